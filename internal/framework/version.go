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

package framework

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion is returned when a framework version string can't be parsed.
var ErrInvalidVersion = errors.New("invalid framework version")

// Version is a framework version of the form major.minor.patch[.build].
//
// The zero Version is the unknown version and compares lower than any valid version.
type Version struct {
	sem   string // canonical semantic version, including the "v" prefix and pre-release
	build int
}

// ParseVersion parses a version string, with or without a leading "v".
func ParseVersion(s string) (Version, error) {
	v := "v" + strings.TrimPrefix(strings.TrimSpace(s), "v")

	core, build := v, 0

	if parts := strings.SplitN(v, ".", 4); len(parts) == 4 && !strings.ContainsAny(parts[2], "-+") {
		b, err := strconv.Atoi(parts[3])
		if err != nil || b < 0 {
			return Version{}, fmt.Errorf("%w %q: build component %q", ErrInvalidVersion, s, parts[3])
		}

		core, build = strings.Join(parts[:3], "."), b
	}

	if !semver.IsValid(core) {
		return Version{}, fmt.Errorf("%w %q", ErrInvalidVersion, s)
	}

	return Version{sem: semver.Canonical(core), build: build}, nil
}

// MustParseVersion is like [ParseVersion], but panics on invalid input.
// It is intended for package-level constants.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Known reports whether the version was detected.
func (v Version) Known() bool { return v.sem != "" }

// Compare returns -1, 0 or +1 depending on whether v < w, v == w or v > w.
func (v Version) Compare(w Version) int {
	if c := semver.Compare(v.sem, w.sem); c != 0 {
		return c
	}

	switch {
	case v.build < w.build:
		return -1

	case v.build > w.build:
		return 1

	default:
		return 0
	}
}

// AtLeast reports whether v is a known version not lower than minimum.
func (v Version) AtLeast(minimum Version) bool {
	return v.Known() && v.Compare(minimum) >= 0
}

// String returns the version without the "v" prefix, or "unknown".
func (v Version) String() string {
	if !v.Known() {
		return "unknown"
	}

	s := v.sem[1:]
	if v.build > 0 {
		s += "." + strconv.Itoa(v.build)
	}

	return s
}
