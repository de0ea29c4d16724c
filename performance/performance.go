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

package performance

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wrenmcu/wren32/curated"
	"github.com/wrenmcu/wren32/hardware"
)

// sentinal error returned by the Run() loop.
var timedOut = errors.New("performance timed out")

// number of retirements between checks of the timer channel. checking the
// channel is relatively expensive.
const performanceBrake = 1000

// how often the throughput sampler records a data point.
const samplePeriod = 100 * time.Millisecond

// Check the performance of the processor using the supplied program.
//
// The program runs for the specified duration. Profiles are created as
// required by the profile argument. If chartFile is not empty a chart of
// sampled throughput is written to that file.
func Check(output io.Writer, profile Profile, programFile string, duration string, chartFile string) error {
	image, err := os.ReadFile(programFile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	m, err := hardware.NewMachine(hardware.DefaultRAMSize)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if err := m.AttachProgram(image); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	sampler := newSampler()

	runner := func() error {
		// the timer channel expires when the measurement duration has
		// elapsed
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		}()

		brake := 0

		return m.Run(func() (bool, error) {
			brake++
			if brake >= performanceBrake {
				brake = 0

				sampler.sample(m)

				select {
				case <-timerChan:
					return false, timedOut
				default:
				}
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	retired := m.CPU.Retired()
	ticks := m.Ticks

	ips, cpi := CalcIPS(retired, ticks, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f MIPS (%d instructions in %.2f seconds) %.2f cycles/instruction\n",
		ips/1e6, retired, dur.Seconds(), cpi)))

	if m.CPU.Halted() {
		output.Write([]byte("processor halted before measurement period expired\n"))
	}

	if chartFile != "" {
		if err := sampler.chart(chartFile); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		output.Write([]byte(fmt.Sprintf("throughput chart written to %s\n", chartFile)))
	}

	return nil
}

// CalcIPS takes a number of retired instructions, the number of clock ticks
// those instructions occupied and a duration in seconds; and returns the
// instructions-per-second and cycles-per-instruction values.
func CalcIPS(retired uint64, ticks uint64, duration float64) (ips float64, cpi float64) {
	if duration > 0 {
		ips = float64(retired) / duration
	}
	if retired > 0 {
		cpi = float64(ticks) / float64(retired)
	}
	return ips, cpi
}
