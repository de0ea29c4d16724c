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
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wrenmcu/wren32/hardware"
)

// sampler records instruction throughput at regular intervals so that a
// chart of the measurement period can be produced.
type sampler struct {
	start       time.Time
	lastSample  time.Time
	lastRetired uint64

	points plotter.XYs
}

func newSampler() *sampler {
	n := time.Now()
	return &sampler{start: n, lastSample: n}
}

// sample is called from the running machine's continue check. A data point
// is recorded no more often than samplePeriod.
func (s *sampler) sample(m *hardware.Machine) {
	n := time.Now()
	elapsed := n.Sub(s.lastSample)
	if elapsed < samplePeriod {
		return
	}

	retired := m.CPU.Retired()
	ips := float64(retired-s.lastRetired) / elapsed.Seconds()

	s.points = append(s.points, plotter.XY{
		X: n.Sub(s.start).Seconds(),
		Y: ips / 1e6,
	})

	s.lastSample = n
	s.lastRetired = retired
}

// chart writes the sampled throughput to the named file. The file extension
// selects the image format, as supported by the plot package.
func (s *sampler) chart(path string) error {
	p := plot.New()
	p.Title.Text = "instruction throughput"
	p.X.Label.Text = "seconds"
	p.Y.Label.Text = "MIPS"

	line, err := plotter.NewLine(s.points)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
