/*
 * errors.go, part of golattice.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 * golattice is developed at the Universidad de Santiago de Chile (USACH).
 *
 */

package lattice

// Error is the interface for errors that the packages in this library
// implement. The Decorate method adds and retrieves information from
// the error without changing its type or wrapping it around something
// else: each element of the returned slice names a function in the
// calling stack, plus any relevant extra info in the format
// "FunctionName: Extra info". Decorating with an empty string just
// returns the current slice.
type Error interface {
	error
	Decorate(string) []string
}

// CError (Concrete Error) is the Error implementation used by this
// library at its I/O boundaries.
type CError struct {
	msg  string
	deco []string
}

// NewError returns a CError with the given message.
func NewError(msg string) *CError {
	return &CError{msg: msg}
}

func (err *CError) Error() string {
	return err.msg
}

// Decorate implements the Error interface.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
