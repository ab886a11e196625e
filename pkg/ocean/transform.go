package ocean

// transform runs a forward FFT over every row of h, then over every column,
// storing the result transposed in height (height[x][y]). The transform is
// unnormalized; Amplitude absorbs the scale.
func (o *Ocean) transform() {
	nx, ny := o.params.SamplesX, o.params.SamplesY

	if o.fftX != nil {
		for i := 0; i < ny; i++ {
			row := o.h.Row(i)
			o.fftX.Coefficients(row, row)
		}
	}

	for x := 0; x < nx; x++ {
		col := o.height.Row(x)
		for y := 0; y < ny; y++ {
			col[y] = o.h.At(y, x)
		}
		if o.fftY != nil {
			o.fftY.Coefficients(col, col)
		}
	}
}
