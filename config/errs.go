package config

import "errors"

var (
	ErrSyntax  = errors.New("config syntax error")
	ErrBadPin  = errors.New("bad pin number")
	ErrKeyword = errors.New("missing keyword")
)
