package image

// fill sets every byte of b to v.
func fill(b *ImageBuf, v uint8) {
	for i := range b.data {
		b.data[i] = v
	}
}

// setAt writes channel c of pixel (x, y).
func setAt(b *ImageBuf, x, y, c int, v uint8) {
	b.data[y*b.stride+x*b.format.BytesPerPixel()+c] = v
}

// pixel returns the channel bytes of pixel (x, y).
func pixel(b *ImageBuf, x, y int) []byte {
	bpp := b.format.BytesPerPixel()
	off := y*b.stride + x*bpp
	return b.data[off : off+bpp]
}
