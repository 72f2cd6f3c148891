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
	"context"
	"fmt"
	"github.com/nebuly-ai/groupings/pkg/api/groupings/v1alpha1"
	"github.com/nebuly-ai/groupings/pkg/partition"
	"github.com/nebuly-ai/groupings/pkg/util"
	"github.com/nebuly-ai/groupings/pkg/util/iter"
	"io"
	"k8s.io/klog/v2"
	"math/big"
)

// Run enumerates the groupings described by the config and writes them to w.
func Run(ctx context.Context, config v1alpha1.GroupingsConfig, w io.Writer) error {
	logger := klog.FromContext(ctx)

	config.FillDefaultValues()
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	elements := config.Elements
	if len(elements) == 0 {
		elements = Alphabet(util.Sum(config.GroupSizes...))
	}
	printer, err := NewPrinter(config.Output, w)
	if err != nil {
		return err
	}
	logger.V(1).Info("enumerating groupings", "elements", elements, "groupSizes", config.GroupSizes)

	var printed int
	var total *big.Int
	if len(config.GroupNames) > 0 {
		printed, total, err = runNamed(ctx, config, elements, printer)
	} else {
		printed, total, err = runUnnamed(ctx, config, elements, printer)
	}
	if err != nil {
		return err
	}

	if config.CountOnly {
		_, err = fmt.Fprintln(w, total)
		return err
	}
	logger.Info("enumeration completed", "printed", printed, "total", total.String())
	return nil
}

func runUnnamed(ctx context.Context, config v1alpha1.GroupingsConfig, elements []string, printer Printer) (int, *big.Int, error) {
	enumerator, err := partition.NewEnumerator(
		elements,
		config.GroupSizes,
		partition.WithLogger(klog.FromContext(ctx).WithName("Enumerator")),
	)
	if err != nil {
		return 0, nil, err
	}
	if config.CountOnly {
		return 0, enumerator.Count(), nil
	}
	printed, err := forEachWithLimit[partition.Grouping[string]](ctx, enumerator, config.Limit, func(g partition.Grouping[string]) error {
		return printer.PrintGrouping(g)
	})
	return printed, enumerator.Count(), err
}

func runNamed(ctx context.Context, config v1alpha1.GroupingsConfig, elements []string, printer Printer) (int, *big.Int, error) {
	groupSizes := make(map[string]int, len(config.GroupNames))
	for i, name := range config.GroupNames {
		groupSizes[name] = config.GroupSizes[i]
	}
	enumerator, err := partition.NewNamedEnumerator(
		elements,
		groupSizes,
		partition.WithLogger(klog.FromContext(ctx).WithName("NamedEnumerator")),
	)
	if err != nil {
		return 0, nil, err
	}
	if config.CountOnly {
		return 0, enumerator.Count(), nil
	}
	names := enumerator.Names()
	printed, err := forEachWithLimit[map[string][]string](ctx, enumerator, config.Limit, func(g map[string][]string) error {
		return printer.PrintNamedGrouping(names, g)
	})
	return printed, enumerator.Count(), err
}

// forEachWithLimit calls f on at most limit values of g, or on all of them if limit is 0,
// and returns the number of calls.
func forEachWithLimit[V any](ctx context.Context, g iter.Generator[V], limit int, f func(v V) error) (int, error) {
	var n int
	err := iter.ForEach(g, func(v V) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if err := f(v); err != nil {
			return false, err
		}
		n++
		return limit == 0 || n < limit, nil
	})
	return n, err
}
