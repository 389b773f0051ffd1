/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package protocol

import "strconv"

// StatusCode is a response status code. The numeric value is the wire value;
// StatusUnknown (0) marks a code outside the recognized catalogue.
type StatusCode uint16

const (
	StatusUnknown                    StatusCode = 0
	StatusContinue                   StatusCode = 100
	StatusOK                         StatusCode = 200
	StatusCreated                    StatusCode = 201
	StatusAccepted                   StatusCode = 202
	StatusNonAuthoritative           StatusCode = 203
	StatusNoContent                  StatusCode = 204
	StatusResetContent               StatusCode = 205
	StatusPartialContent             StatusCode = 206
	StatusMultiStatus                StatusCode = 207
	StatusMultipleChoices            StatusCode = 300
	StatusMovedPermanently           StatusCode = 301
	StatusFound                      StatusCode = 302
	StatusSeeOther                   StatusCode = 303
	StatusNotModified                StatusCode = 304
	StatusUseProxy                   StatusCode = 305
	StatusTemporaryRedirect          StatusCode = 307
	StatusPermanentRedirect          StatusCode = 308
	StatusBadRequest                 StatusCode = 400
	StatusUnauthorized               StatusCode = 401
	StatusPaymentRequired            StatusCode = 402
	StatusForbidden                  StatusCode = 403
	StatusNotFound                   StatusCode = 404
	StatusMethodNotAllowed           StatusCode = 405
	StatusNotAcceptable              StatusCode = 406
	StatusRequestTimeout             StatusCode = 408
	StatusLengthRequired             StatusCode = 411
	StatusPreconditionFailed         StatusCode = 412
	StatusRequestEntityTooLarge      StatusCode = 413
	StatusRequestURITooLarge         StatusCode = 414
	StatusUnsupportedMediaType       StatusCode = 415
	StatusRangeNotSatisfiable        StatusCode = 416
	StatusExpectationFailed          StatusCode = 417
	StatusUnprocessableEntity        StatusCode = 422
	StatusLocked                     StatusCode = 423
	StatusFailedDependency           StatusCode = 424
	StatusUpgradeRequired            StatusCode = 426
	StatusUnavailableForLegalReasons StatusCode = 451
	StatusInternalServerError        StatusCode = 500
	StatusNotImplemented             StatusCode = 501
	StatusBadGateway                 StatusCode = 502
	StatusServiceUnavailable         StatusCode = 503
	StatusGatewayTimeout             StatusCode = 504
	StatusVersionNotSupported        StatusCode = 505
	StatusVariantAlsoVaries          StatusCode = 506
	StatusInsufficientStorage        StatusCode = 507
	StatusNotExtended                StatusCode = 510
	StatusFrequencyCapping           StatusCode = 514
	StatusScriptServerError          StatusCode = 544
)

var statusReason = map[StatusCode]string{
	StatusContinue:                   "Continue",
	StatusOK:                         "OK",
	StatusCreated:                    "Created",
	StatusAccepted:                   "Accepted",
	StatusNonAuthoritative:           "Non-Authoritative Information",
	StatusNoContent:                  "No Content",
	StatusResetContent:               "Reset Content",
	StatusPartialContent:             "Partial Content",
	StatusMultiStatus:                "Multi-Status",
	StatusMultipleChoices:            "Multiple Choices",
	StatusMovedPermanently:           "Moved Permanently",
	StatusFound:                      "Found",
	StatusSeeOther:                   "See Other",
	StatusNotModified:                "Not Modified",
	StatusUseProxy:                   "Use Proxy",
	StatusTemporaryRedirect:          "Temporary Redirect",
	StatusPermanentRedirect:          "Permanent Redirect",
	StatusBadRequest:                 "Bad Request",
	StatusUnauthorized:               "Unauthorized",
	StatusPaymentRequired:            "Payment Required",
	StatusForbidden:                  "Forbidden",
	StatusNotFound:                   "Not Found",
	StatusMethodNotAllowed:           "Method Not Allowed",
	StatusNotAcceptable:              "Not Acceptable",
	StatusRequestTimeout:             "Request Timeout",
	StatusLengthRequired:             "Length Required",
	StatusPreconditionFailed:         "Precondition Failed",
	StatusRequestEntityTooLarge:      "Request Entity Too Large",
	StatusRequestURITooLarge:         "Request-URI Too Large",
	StatusUnsupportedMediaType:       "Unsupported Media Type",
	StatusRangeNotSatisfiable:        "Range Not Satisfiable",
	StatusExpectationFailed:          "Expectation Failed",
	StatusUnprocessableEntity:        "Unprocessable Entity",
	StatusLocked:                     "Locked",
	StatusFailedDependency:           "Failed Dependency",
	StatusUpgradeRequired:            "Upgrade Required",
	StatusUnavailableForLegalReasons: "Unavailable For Legal Reasons",
	StatusInternalServerError:        "Internal Server Error",
	StatusNotImplemented:             "Not Implemented",
	StatusBadGateway:                 "Bad Gateway",
	StatusServiceUnavailable:         "Service Unavailable",
	StatusGatewayTimeout:             "Gateway Timeout",
	StatusVersionNotSupported:        "HTTP Version Not Supported",
	StatusVariantAlsoVaries:          "Variant Also Negotiates",
	StatusInsufficientStorage:        "Insufficient Storage",
	StatusNotExtended:                "Not Extended",
	StatusFrequencyCapping:           "Frequency Capped",
	StatusScriptServerError:          "Script Server Error",
}

// status11Line holds the full HTTP/1.1 status line, CRLF excluded, for each
// catalogued code. Built once so that the 1.1 send path appends a single
// precomputed string; the 1.0 path assembles the line field by field.
var status11Line = func() map[StatusCode]string {
	m := make(map[StatusCode]string, len(statusReason))
	for c, r := range statusReason {
		m[c] = "HTTP/1.1 " + strconv.Itoa(int(c)) + " " + r
	}
	return m
}()

// Reason returns the canonical reason phrase for the code, empty when the
// code is not catalogued.
func (s StatusCode) Reason() string {
	return statusReason[s]
}

// Line11 returns the precomputed HTTP/1.1 status line without the trailing
// CRLF, and whether the code is catalogued.
func (s StatusCode) Line11() (string, bool) {
	l, ok := status11Line[s]
	return l, ok
}

func (s StatusCode) String() string {
	return strconv.Itoa(int(s))
}

// ParseStatusCode maps three ASCII digits to a catalogued StatusCode.
// Values with valid digits but outside the catalogue yield StatusUnknown;
// the ok result is false when any byte is not a digit.
func ParseStatusCode(p []byte) (StatusCode, bool) {
	if len(p) != 3 {
		return StatusUnknown, false
	}
	if !IsDigit(p[0]) || !IsDigit(p[1]) || !IsDigit(p[2]) {
		return StatusUnknown, false
	}
	v := StatusCode(p[0]-'0')*100 + StatusCode(p[1]-'0')*10 + StatusCode(p[2]-'0')
	if _, ok := statusReason[v]; !ok {
		return StatusUnknown, true
	}
	return v, true
}
