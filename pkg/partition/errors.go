/*
 * Copyright 2023 nebuly.com.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package partition

import (
	"errors"
	"fmt"
)

type errorCode string

const (
	errorCodeConfiguration errorCode = "configuration"
)

var (
	ConfigurationErr = errorImpl{code: errorCodeConfiguration}
)

// Error is the error returned by the constructors of this package.
type Error interface {
	error
	IsConfigurationError() bool
}

type errorImpl struct {
	code errorCode
	err  error
}

func (e errorImpl) Error() string {
	return fmt.Sprintf("[code: %s  err: %s]", e.code, e.err.Error())
}

func (e errorImpl) Unwrap() error {
	return e.err
}

func (e errorImpl) IsConfigurationError() bool {
	return e.code == errorCodeConfiguration
}

func (e errorImpl) Errorf(format string, args ...any) Error {
	e.err = fmt.Errorf(format, args...)
	return e
}

// IsConfigurationError returns true if err, or any error it wraps, is a
// configuration error produced while building an enumerator.
func IsConfigurationError(err error) bool {
	if err == nil {
		return false
	}
	var partitionErr Error
	if !errors.As(err, &partitionErr) {
		return false
	}
	return partitionErr.IsConfigurationError()
}
