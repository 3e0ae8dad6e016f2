package course

import "github.com/chewxy/math32"

// fractalValueNoise2D is layered smooth value noise with configurable octaves,
// lacunarity and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	tx := x - float32(x0)
	ty := y - float32(y0)

	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := lerp(v00, v10, sx)
	ix1 := lerp(v01, v11, sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps lattice coordinates to a deterministic value in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
