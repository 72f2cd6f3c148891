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

package v1alpha1

import (
	"github.com/nebuly-ai/groupings/pkg/constant"
	"github.com/nebuly-ai/groupings/pkg/util"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

const (
	Kind       = "GroupingsConfig"
	APIVersion = "groupings.nebuly.com/v1alpha1"
)

// GroupingsConfig describes the groupings to enumerate and how to print them.
type GroupingsConfig struct {
	metav1.TypeMeta `json:",inline"`
	// GroupSizes is the size of each group
	GroupSizes []int `json:"groupSizes,omitempty"`
	// GroupNames optionally names the groups, one name per size
	GroupNames []string `json:"groupNames,omitempty"`
	// Elements are the values to group. If empty, the first letters
	// of the alphabet are used, as many as the sum of the group sizes.
	Elements []string `json:"elements,omitempty"`
	// Limit is the max number of groupings to print, 0 means no limit
	Limit int `json:"limit,omitempty"`
	// Output is the format used for printing the groupings
	Output constant.OutputFormat `json:"output,omitempty"`
	// CountOnly prints only the number of groupings
	CountOnly bool `json:"countOnly,omitempty"`
}

func (c *GroupingsConfig) FillDefaultValues() {
	if c.Kind == "" {
		c.Kind = Kind
	}
	if c.APIVersion == "" {
		c.APIVersion = APIVersion
	}
	if c.Output == "" {
		c.Output = constant.DefaultOutputFormat
	}
}

// Validate returns an aggregate of all the invalid fields, or nil if the config is valid.
func (c *GroupingsConfig) Validate() error {
	var errs field.ErrorList

	if c.Kind != "" && c.Kind != Kind {
		errs = append(errs, field.Invalid(field.NewPath("kind"), c.Kind, "must be "+Kind))
	}

	sizesPath := field.NewPath("groupSizes")
	for i, size := range c.GroupSizes {
		if size < 0 {
			errs = append(errs, field.Invalid(sizesPath.Index(i), size, "must be non-negative"))
		}
	}

	namesPath := field.NewPath("groupNames")
	if len(c.GroupNames) > 0 {
		if len(c.GroupNames) != len(c.GroupSizes) {
			errs = append(errs, field.Invalid(namesPath, c.GroupNames, "must provide one name for each group size"))
		}
		seen := make(map[string]bool, len(c.GroupNames))
		for i, name := range c.GroupNames {
			if name == "" {
				errs = append(errs, field.Required(namesPath.Index(i), "name cannot be empty"))
				continue
			}
			if seen[name] {
				errs = append(errs, field.Duplicate(namesPath.Index(i), name))
			}
			seen[name] = true
		}
	}

	if len(c.Elements) > 0 && util.Sum(c.GroupSizes...) > len(c.Elements) {
		errs = append(
			errs,
			field.Invalid(field.NewPath("elements"), len(c.Elements), "fewer elements than the sum of the group sizes"),
		)
	}

	if c.Limit < 0 {
		errs = append(errs, field.Invalid(field.NewPath("limit"), c.Limit, "must be non-negative"))
	}

	if c.Output != "" && !util.InSlice(c.Output, constant.OutputFormats) {
		errs = append(errs, field.NotSupported(field.NewPath("output"), c.Output, outputFormatNames()))
	}

	return errs.ToAggregate()
}

func outputFormatNames() []string {
	res := make([]string, len(constant.OutputFormats))
	for i, f := range constant.OutputFormats {
		res[i] = string(f)
	}
	return res
}
