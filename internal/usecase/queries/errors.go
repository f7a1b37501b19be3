package queries

import "courtbook/internal/pkg/errs"

var (
	ErrViewNotFound  = errs.New("record not found")
	ErrViewForbidden = errs.New("access denied")
)
