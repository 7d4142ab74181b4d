// Copyright 2014 Google Inc. All rights reserved.
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

package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"rvmm/machine"
	"rvmm/platform"
)

// The layout symbols the boot code consumes. These are produced by
// the external link step; the names follow the usual linker-script
// convention for a minimal supervisor image.
const (
	BssStartSymbol = "__bss"
	BssEndSymbol   = "__bss_end"
	StackTopSymbol = "__stack_top"
)

// SystemMap is a parsed symbol map: name to address.
type SystemMap map[string]platform.Paddr

// ParseMap reads an nm-style map: one "address type symbol" entry
// per line, addresses in hex. Blank lines and #-comments are
// skipped. The symbol type column is accepted and ignored, so both
// two- and three-column maps parse.
func ParseMap(input io.Reader) (SystemMap, error) {

	sysmap := make(SystemMap)
	scanner := bufio.NewScanner(input)
	lineno := 0

	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, errors.Errorf(
				"map line %d: expected 'address [type] symbol', got %q",
				lineno, line)
		}

		addr, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "map line %d: bad address %q",
				lineno, fields[0])
		}

		symbol := fields[len(fields)-1]
		sysmap[symbol] = platform.Paddr(addr)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading system map")
	}

	return sysmap, nil
}

// Lookup resolves one symbol.
func (sysmap SystemMap) Lookup(symbol string) (platform.Paddr, error) {
	addr, ok := sysmap[symbol]
	if !ok {
		return 0, errors.Errorf("no such symbol: %s", symbol)
	}
	return addr, nil
}

// Layout resolves the three boot layout symbols into the opaque
// addresses the startup code consumes.
func (sysmap SystemMap) Layout() (machine.Layout, error) {

	var layout machine.Layout
	var err error

	if layout.BssStart, err = sysmap.Lookup(BssStartSymbol); err != nil {
		return layout, err
	}
	if layout.BssEnd, err = sysmap.Lookup(BssEndSymbol); err != nil {
		return layout, err
	}
	if layout.StackTop, err = sysmap.Lookup(StackTopSymbol); err != nil {
		return layout, err
	}

	return layout, nil
}
