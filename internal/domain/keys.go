package domain

type CtxKey string

const (
	KeyActor     CtxKey = "Actor"
	KeyRequestID CtxKey = "RequestID"
)
