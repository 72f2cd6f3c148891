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
	"encoding/json"
	"fmt"
	"github.com/nebuly-ai/groupings/pkg/constant"
	"io"
	"sigs.k8s.io/yaml"
	"strings"
)

// Printer writes groupings of string elements to an output stream.
type Printer interface {
	PrintGrouping(groups [][]string) error
	// PrintNamedGrouping prints the groups in the order given by names
	PrintNamedGrouping(names []string, groups map[string][]string) error
}

func NewPrinter(format constant.OutputFormat, w io.Writer) (Printer, error) {
	switch format {
	case constant.OutputFormatText, "":
		return textPrinter{w: w}, nil
	case constant.OutputFormatJSON:
		return jsonPrinter{encoder: json.NewEncoder(w)}, nil
	case constant.OutputFormatYAML:
		return yamlPrinter{w: w}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

type textPrinter struct {
	w io.Writer
}

func (p textPrinter) PrintGrouping(groups [][]string) error {
	parts := make([]string, len(groups))
	for i, group := range groups {
		parts[i] = bracket(group)
	}
	_, err := fmt.Fprintln(p.w, strings.Join(parts, " "))
	return err
}

func (p textPrinter) PrintNamedGrouping(names []string, groups map[string][]string) error {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + bracket(groups[name])
	}
	_, err := fmt.Fprintln(p.w, strings.Join(parts, " "))
	return err
}

func bracket(group []string) string {
	return "[" + strings.Join(group, " ") + "]"
}

// jsonPrinter writes one JSON document per line
type jsonPrinter struct {
	encoder *json.Encoder
}

func (p jsonPrinter) PrintGrouping(groups [][]string) error {
	return p.encoder.Encode(groups)
}

func (p jsonPrinter) PrintNamedGrouping(_ []string, groups map[string][]string) error {
	return p.encoder.Encode(groups)
}

// yamlPrinter writes a stream of YAML documents
type yamlPrinter struct {
	w io.Writer
}

func (p yamlPrinter) PrintGrouping(groups [][]string) error {
	return p.print(groups)
}

func (p yamlPrinter) PrintNamedGrouping(_ []string, groups map[string][]string) error {
	return p.print(groups)
}

func (p yamlPrinter) print(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(p.w, "---\n"); err != nil {
		return err
	}
	_, err = p.w.Write(out)
	return err
}
