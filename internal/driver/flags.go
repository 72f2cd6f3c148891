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
package driver

import (
	"fmt"
	"github.com/nebuly-ai/groupings/pkg/api/groupings/v1alpha1"
	"github.com/nebuly-ai/groupings/pkg/constant"
)

const (
	FlagConfig    = "config"
	FlagSizes     = "sizes"
	FlagLimit     = "limit"
	FlagOutput    = "output"
	FlagCountOnly = "count-only"
)

// Flags holds the command line values that can override a GroupingsConfig.
type Flags struct {
	GroupSizes string
	Limit      int
	Output     string
	CountOnly  bool
	// Set contains the names of the flags explicitly provided on the command line
	Set map[string]bool
}

// ApplyFlags overrides the fields of config with the flags explicitly set.
// Group sizes and output fall back to the flag values, defaults included,
// when the config does not provide them.
func ApplyFlags(config *v1alpha1.GroupingsConfig, flags Flags) error {
	if flags.Set[FlagSizes] || config.GroupSizes == nil {
		sizes, err := ParseGroupSizes(flags.GroupSizes)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", FlagSizes, err)
		}
		config.GroupSizes = sizes
	}
	if flags.Set[FlagLimit] {
		config.Limit = flags.Limit
	}
	if flags.Set[FlagOutput] || config.Output == "" {
		config.Output = constant.OutputFormat(flags.Output)
	}
	if flags.Set[FlagCountOnly] {
		config.CountOnly = flags.CountOnly
	}
	return nil
}
