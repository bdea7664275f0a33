/*
 * errors.go, part of gomess.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package mess

import (
	"errors"
	"fmt"
	"strings"
)

//ErrorKind tells apart the three ways in which building or querying a model can fail.
type ErrorKind int

const (
	//ConfigError signals malformed or physically inconsistent input.
	ConfigError ErrorKind = iota
	//LogicError signals a programming defect in the caller.
	LogicError
	//ComputeError signals a numerical procedure that did not converge.
	ComputeError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigError:
		return "configuration error"
	case LogicError:
		return "logic error"
	case ComputeError:
		return "computation error"
	}
	return "unknown error"
}

//Error is the error type returned by all gomess packages. The Decorate method allows to add
//the name of each function the error passes through, without changing its type or wrapping it
//around something else.
type Error struct {
	message  string
	kind     ErrorKind
	deco     []string
	critical bool
	err      error //the wrapped cause, if any
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	s := fmt.Sprintf("gomess %s: %s", err.kind, err.message)
	if len(err.deco) > 0 {
		s = fmt.Sprintf("%s (in %s)", s, strings.Join(err.deco, " <- "))
	}
	if err.err != nil {
		s = s + ": " + err.err.Error()
	}
	return s
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty string just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

//Kind returns the kind of the error.
func (err *Error) Kind() ErrorKind { return err.kind }

//Unwrap returns the cause of the error, if any.
func (err *Error) Unwrap() error { return err.err }

//NewConfigError returns a critical configuration error, decorated with caller.
func NewConfigError(caller, format string, args ...interface{}) error {
	return &Error{message: fmt.Sprintf(format, args...), kind: ConfigError, deco: []string{caller}, critical: true}
}

//NewComputeError returns a critical computation error, decorated with caller.
func NewComputeError(caller, format string, args ...interface{}) error {
	return &Error{message: fmt.Sprintf(format, args...), kind: ComputeError, deco: []string{caller}, critical: true}
}

//WrapError wraps a foreign error (from the file system, the YAML decoder, gonum, etc.)
//into an Error of the given kind.
func WrapError(err error, kind ErrorKind, caller, message string) error {
	if err == nil {
		return nil
	}
	return &Error{message: message, kind: kind, deco: []string{caller}, critical: true, err: err}
}

//ErrDecorate decorates err with the caller's name before returning it.
//Errors not produced by this library are wrapped as configuration errors,
//which is what they almost always are (unreadable files, bad YAML).
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return WrapError(err, ConfigError, caller, "external error")
}

//IsKind returns true if err is, or wraps, a gomess Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error. A panic with a PanicMsg always means a bug in the calling code.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotSet     = PanicMsg("gomess: rotor queried before Set was called")
	ErrAlreadySet = PanicMsg("gomess: Set called twice on the same rotor")
	ErrNoStates   = PanicMsg("gomess: States requested from a model built in NOSTATES mode")
	ErrWrongMode  = PanicMsg("gomess: wrong energy-counting mode")
	ErrShape      = PanicMsg("gomess: dimension mismatch")
)
