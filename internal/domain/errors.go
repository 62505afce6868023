package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidFieldType   = errors.New("invalid field type")
	ErrDuplicateKeyword   = errors.New("keyword already exists for this field type")
	ErrSequenceMismatch   = errors.New("reorder request does not cover the current item set")
	ErrEmptyImport        = errors.New("import contains no usable rows")
	ErrUnsupportedImport  = errors.New("unsupported import file type")
	ErrExportFailed       = errors.New("export upload to storage failed")
)
