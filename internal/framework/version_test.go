// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package framework_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/actorlint/internal/framework"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		err  error
	}{
		{"1.5.14", "1.5.14", nil},
		{"v1.6.0", "1.6.0", nil},
		{" 1.5.15.3 ", "1.5.15.3", nil},
		{"1.6.0-beta1", "1.6.0-beta1", nil},
		{"1.6", "1.6.0", nil},
		{"1.5.15.x", "", ErrInvalidVersion},
		{"latest", "", ErrInvalidVersion},
		{"", "", ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			v, err := ParseVersion(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.in, err, tt.err)
			}

			if tt.err != nil {
				return
			}

			if got := v.String(); got != tt.want {
				t.Errorf("ParseVersion(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersionCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"1.5.14", "1.5.15", -1},
		{"1.5.15", "1.5.15", 0},
		{"1.5.15.1", "1.5.15", 1},
		{"1.6.0-beta1", "1.6.0", -1},
		{"1.10.0", "1.9.9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()

			a, b := MustParseVersion(tt.a), MustParseVersion(tt.b)

			if got := a.Compare(b); got != tt.want {
				t.Errorf("%s.Compare(%s) = %d, want %d", a, b, got, tt.want)
			}

			if got, want := a.AtLeast(b), tt.want >= 0; got != want {
				t.Errorf("%s.AtLeast(%s) = %t, want %t", a, b, got, want)
			}
		})
	}
}

func TestUnknownVersion(t *testing.T) {
	t.Parallel()

	var unknown Version

	if unknown.Known() {
		t.Error("Zero version is known")
	}

	if unknown.AtLeast(Version{}) {
		t.Error("Unknown version satisfies a minimum")
	}

	if got, want := unknown.String(), "unknown"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
