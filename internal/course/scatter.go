package course

import (
	"sort"
	"time"

	"github.com/chewxy/math32"
)

// ScatterOptions places extra crates where fractal noise peaks.
// Extent is the half size of the square area around the origin; no crate is placed
// within ClearRadius of the origin so the spawn point stays free. Seed == 0 uses a
// time-based seed.
type ScatterOptions struct {
	Count       int     `yaml:"count"`
	Seed        int64   `yaml:"seed"`
	Extent      float32 `yaml:"extent"`
	CellSize    float32 `yaml:"cell_size"`
	ClearRadius float32 `yaml:"clear_radius"`
	MinSize     float32 `yaml:"min_size"`
	MaxSize     float32 `yaml:"max_size"`
	Octaves     int     `yaml:"octaves"`
	Frequency   float32 `yaml:"frequency"`
	Lacunarity  float32 `yaml:"lacunarity"`
	Gain        float32 `yaml:"gain"`
	Color       string  `yaml:"color,omitempty"`
}

// DefaultScatterOptions returns a sparse scatter over the default ground slab.
func DefaultScatterOptions() ScatterOptions {
	return ScatterOptions{
		Count:       12,
		Extent:      40,
		CellSize:    4,
		ClearRadius: 6,
		MinSize:     0.5,
		MaxSize:     2.5,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2,
		Gain:        0.5,
		Color:       ObstacleColor,
	}
}

func (o ScatterOptions) withDefaults() ScatterOptions {
	def := DefaultScatterOptions()
	if o.Extent <= 0 {
		o.Extent = def.Extent
	}
	if o.CellSize <= 0 {
		o.CellSize = def.CellSize
	}
	if o.MinSize <= 0 {
		o.MinSize = def.MinSize
	}
	if o.MaxSize < o.MinSize {
		o.MaxSize = o.MinSize
	}
	if o.Octaves <= 0 {
		o.Octaves = def.Octaves
	}
	if o.Frequency <= 0 {
		o.Frequency = def.Frequency
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = def.Lacunarity
	}
	if o.Gain <= 0 {
		o.Gain = def.Gain
	}
	if o.Color == "" {
		o.Color = def.Color
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

type candidate struct {
	x, z, h float32
}

// Scatter returns up to opts.Count crates sitting on y=0. Cells are ranked by noise
// height; the crate size grows with it. Crates keep a one unit gap from avoid.
func Scatter(opts ScatterOptions, avoid []Obstacle) []Obstacle {
	if opts.Count <= 0 {
		return nil
	}
	opts = opts.withDefaults()

	cells := int(2 * opts.Extent / opts.CellSize)
	var cands []candidate
	for gz := 0; gz < cells; gz++ {
		for gx := 0; gx < cells; gx++ {
			h := fractalValueNoise2D(float32(gx)*opts.CellSize*opts.Frequency, float32(gz)*opts.CellSize*opts.Frequency,
				opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			// Jitter inside the cell so crates do not line up on the lattice.
			jx := hash2D(int32(gx), int32(gz), int32(opts.Seed)+101) - 0.5
			jz := hash2D(int32(gz), int32(gx), int32(opts.Seed)+202) - 0.5
			x := -opts.Extent + (float32(gx)+0.5+jx*0.5)*opts.CellSize
			z := -opts.Extent + (float32(gz)+0.5+jz*0.5)*opts.CellSize
			cands = append(cands, candidate{x: x, z: z, h: h})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].h > cands[j].h })

	var out []Obstacle
	for _, c := range cands {
		if len(out) == opts.Count {
			break
		}
		size := opts.MinSize + c.h*(opts.MaxSize-opts.MinSize)
		if math32.Sqrt(c.x*c.x+c.z*c.z) < opts.ClearRadius+size {
			continue
		}
		o := Obstacle{
			Kind:     "obstacle",
			Position: [3]float32{c.x, size / 2, c.z},
			Size:     [3]float32{size, size, size},
			Color:    opts.Color,
		}
		if overlaps(o, avoid) || overlaps(o, out) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// overlaps compares bounding circles on XZ, ignoring the ground.
func overlaps(o Obstacle, others []Obstacle) bool {
	r := footprint(o)
	for _, other := range others {
		if other.Kind == "ground" {
			continue
		}
		dx := o.Position[0] - other.Position[0]
		dz := o.Position[2] - other.Position[2]
		if math32.Sqrt(dx*dx+dz*dz) < r+footprint(other)+1 {
			return true
		}
	}
	return false
}

func footprint(o Obstacle) float32 {
	return math32.Sqrt(o.Size[0]*o.Size[0]+o.Size[2]*o.Size[2]) / 2
}
