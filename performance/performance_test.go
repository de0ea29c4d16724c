// This file is part of Wren32.
//
// Wren32 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wren32 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wren32.  If not, see <https://www.gnu.org/licenses/>.

package performance_test

import (
	"testing"

	"github.com/wrenmcu/wren32/performance"
	"github.com/wrenmcu/wren32/test"
)

func TestCalcIPS(t *testing.T) {
	ips, cpi := performance.CalcIPS(1000, 5000, 2.0)
	test.Equate(t, ips == 500.0, true)
	test.Equate(t, cpi == 5.0, true)

	// degenerate values must not divide by zero
	ips, cpi = performance.CalcIPS(0, 0, 0)
	test.Equate(t, ips == 0.0, true)
	test.Equate(t, cpi == 0.0, true)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectSuccess(t, err)
	test.Equate(t, p == performance.ProfileCPU, true)

	p, err = performance.ParseProfileString("cpu,mem")
	test.ExpectSuccess(t, err)
	test.Equate(t, p == performance.ProfileCPU|performance.ProfileMem, true)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.Equate(t, p == performance.ProfileAll, true)

	_, err = performance.ParseProfileString("fast")
	test.ExpectFailure(t, err)
}
