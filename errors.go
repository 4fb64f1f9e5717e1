// Copyright 2024 The h3go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3go

// ErrorCode is the stable numeric identifier of a library error. The
// values are part of the interchange contract and never change between
// releases.
type ErrorCode uint32

const (
	E_SUCCESS            ErrorCode = iota // no error
	E_FAILED                              // generic failure
	E_DOMAIN                              // argument outside of acceptable range
	E_LATLNG_DOMAIN                       // lat/lng argument outside of acceptable range
	E_RES_DOMAIN                          // resolution argument outside of acceptable range
	E_CELL_INVALID                        // cell argument not valid
	E_DIR_EDGE_INVALID                    // directed edge argument not valid
	E_UNDIR_EDGE_INVALID                  // undirected edge argument not valid
	E_VERTEX_INVALID                      // vertex argument not valid
	E_PENTAGON                            // pentagon distortion encountered
	E_DUPLICATE_INPUT                     // duplicate input
	E_NOT_NEIGHBORS                       // cell arguments not neighbors
	E_RES_MISMATCH                        // cell arguments had incompatible resolutions
	E_MEMORY_ALLOC                        // memory allocation failed
	E_MEMORY_BOUNDS                       // bounds of provided memory insufficient
	E_OPTION_INVALID                      // mode or flags argument not valid
)

// Error is a library error carrying one of the stable error codes.
type Error struct {
	Code ErrorCode
	msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "h3go: " + e.msg
}

var (
	ErrFailed           = &Error{E_FAILED, "the operation failed but a more specific error is not available"}
	ErrDomain           = &Error{E_DOMAIN, "argument was outside of acceptable range"}
	ErrLatLngDomain     = &Error{E_LATLNG_DOMAIN, "latitude or longitude arguments were outside of acceptable range"}
	ErrResDomain        = &Error{E_RES_DOMAIN, "resolution argument was outside of acceptable range"}
	ErrCellInvalid      = &Error{E_CELL_INVALID, "cell argument was not valid"}
	ErrDirEdgeInvalid   = &Error{E_DIR_EDGE_INVALID, "directed edge argument was not valid"}
	ErrUndirEdgeInvalid = &Error{E_UNDIR_EDGE_INVALID, "undirected edge argument was not valid"}
	ErrVertexInvalid    = &Error{E_VERTEX_INVALID, "vertex argument was not valid"}
	ErrPentagon         = &Error{E_PENTAGON, "pentagon distortion was encountered"}
	ErrDuplicateInput   = &Error{E_DUPLICATE_INPUT, "duplicate input"}
	ErrNotNeighbors     = &Error{E_NOT_NEIGHBORS, "cell arguments were not neighbors"}
	ErrResMismatch      = &Error{E_RES_MISMATCH, "cell arguments had incompatible resolutions"}
	ErrMemoryAlloc      = &Error{E_MEMORY_ALLOC, "memory allocation failed"}
	ErrMemoryBounds     = &Error{E_MEMORY_BOUNDS, "bounds of provided memory were insufficient"}
	ErrOptionInvalid    = &Error{E_OPTION_INVALID, "mode or flags argument was not valid"}
)

var errorsByCode = [...]*Error{
	E_FAILED:             ErrFailed,
	E_DOMAIN:             ErrDomain,
	E_LATLNG_DOMAIN:      ErrLatLngDomain,
	E_RES_DOMAIN:         ErrResDomain,
	E_CELL_INVALID:       ErrCellInvalid,
	E_DIR_EDGE_INVALID:   ErrDirEdgeInvalid,
	E_UNDIR_EDGE_INVALID: ErrUndirEdgeInvalid,
	E_VERTEX_INVALID:     ErrVertexInvalid,
	E_PENTAGON:           ErrPentagon,
	E_DUPLICATE_INPUT:    ErrDuplicateInput,
	E_NOT_NEIGHBORS:      ErrNotNeighbors,
	E_RES_MISMATCH:       ErrResMismatch,
	E_MEMORY_ALLOC:       ErrMemoryAlloc,
	E_MEMORY_BOUNDS:      ErrMemoryBounds,
	E_OPTION_INVALID:     ErrOptionInvalid,
}

// ErrorForCode returns the sentinel error value for a stable error code,
// or nil for E_SUCCESS. Unknown codes map to ErrFailed.
func ErrorForCode(code ErrorCode) error {
	if code == E_SUCCESS {
		return nil
	}
	if int(code) < len(errorsByCode) && errorsByCode[code] != nil {
		return errorsByCode[code]
	}
	return ErrFailed
}

// DescribeError returns the string describing an error code.
func DescribeError(code ErrorCode) string {
	if code == E_SUCCESS {
		return "Success"
	}
	if int(code) < len(errorsByCode) && errorsByCode[code] != nil {
		return errorsByCode[code].msg
	}
	return "Invalid error code"
}

// wrapDirectedEdgeError presents undirected edge errors in place of
// directed edge errors for the mode 3 edge functions.
func wrapDirectedEdgeError(err error) error {
	if err == ErrDirEdgeInvalid {
		return ErrUndirEdgeInvalid
	}
	return err
}
