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
	"bytes"
	"github.com/nebuly-ai/groupings/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPrinter(t *testing.T) {
	groups := [][]string{{"a", "b"}, {"c", "d", "e"}, {}}
	named := map[string][]string{"red": {"a"}, "blue": {"b", "c"}}
	names := []string{"blue", "red"}

	testCases := []struct {
		format        constant.OutputFormat
		expected      string
		expectedNamed string
	}{
		{
			format:        constant.OutputFormatText,
			expected:      "[a b] [c d e] []\n",
			expectedNamed: "blue=[b c] red=[a]\n",
		},
		{
			format:        constant.OutputFormatJSON,
			expected:      `[["a","b"],["c","d","e"],[]]` + "\n",
			expectedNamed: `{"blue":["b","c"],"red":["a"]}` + "\n",
		},
		{
			format:        constant.OutputFormatYAML,
			expected:      "---\n- - a\n  - b\n- - c\n  - d\n  - e\n- []\n",
			expectedNamed: "---\nblue:\n- b\n- c\nred:\n- a\n",
		},
	}

	for _, tt := range testCases {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			p, err := NewPrinter(tt.format, &buf)
			require.NoError(t, err)
			require.NoError(t, p.PrintGrouping(groups))
			assert.Equal(t, tt.expected, buf.String())

			buf.Reset()
			require.NoError(t, p.PrintNamedGrouping(names, named))
			assert.Equal(t, tt.expectedNamed, buf.String())
		})
	}

	_, err := NewPrinter("xml", &bytes.Buffer{})
	assert.Error(t, err)
}
