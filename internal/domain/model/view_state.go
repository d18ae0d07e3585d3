package model

// ViewState is the lifecycle of the weather view.
type ViewState string

const (
	StateLoading ViewState = "LOADING"
	StateReady   ViewState = "READY"
	StateFailed  ViewState = "FAILED"
)
