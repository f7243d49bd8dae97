package service

import (
	"errors"
	"fmt"
)

var (
	ErrRemoteRead  = errors.New("gagal mengambil data kajian")
	ErrRemoteWrite = errors.New("gagal menambahkan data kajian")
)

// RemoteReadError: GET ke sheet gagal (status non-2xx, transport, atau body rusak).
// StatusCode 0 berarti request tidak pernah dapat response.
type RemoteReadError struct {
	StatusCode int
	Err        error
}

func (e *RemoteReadError) Error() string {
	return describe(ErrRemoteRead, e.StatusCode, e.Err)
}

func (e *RemoteReadError) Is(target error) bool { return target == ErrRemoteRead }
func (e *RemoteReadError) Unwrap() error        { return e.Err }

// RemoteWriteError: POST ke sheet gagal.
type RemoteWriteError struct {
	StatusCode int
	Err        error
}

func (e *RemoteWriteError) Error() string {
	return describe(ErrRemoteWrite, e.StatusCode, e.Err)
}

func (e *RemoteWriteError) Is(target error) bool { return target == ErrRemoteWrite }
func (e *RemoteWriteError) Unwrap() error        { return e.Err }

func describe(base error, status int, cause error) string {
	switch {
	case cause != nil:
		return fmt.Sprintf("%s: %v", base, cause)
	case status != 0:
		return fmt.Sprintf("%s: status %d", base, status)
	default:
		return base.Error()
	}
}
