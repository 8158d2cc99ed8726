package bga

// RemoveBackground makes solid-black regions connected to any image
// corner transparent, in place. A pixel belongs to the background mask
// when it is pure black and opaque; regions are 4-connected. Black
// pixels enclosed by non-black content are kept.
func RemoveBackground(pix []uint8, width, height int) {
	if width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return
	}

	isBlack := func(i int) bool {
		base := i * 4
		return pix[base] == 0 && pix[base+1] == 0 && pix[base+2] == 0 && pix[base+3] != 0
	}

	visited := make([]bool, width*height)
	queue := make([]int, 0, width)
	corners := []int{
		0,
		width - 1,
		(height - 1) * width,
		height*width - 1,
	}
	for _, c := range corners {
		if !visited[c] && isBlack(c) {
			visited[c] = true
			queue = append(queue, c)
		}
	}

	for len(queue) > 0 {
		i := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		x, y := i%width, i/width

		neighbors := [4]int{-1, -1, -1, -1}
		if x > 0 {
			neighbors[0] = i - 1
		}
		if x < width-1 {
			neighbors[1] = i + 1
		}
		if y > 0 {
			neighbors[2] = i - width
		}
		if y < height-1 {
			neighbors[3] = i + width
		}
		for _, n := range neighbors {
			if n >= 0 && !visited[n] && isBlack(n) {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	for i, hit := range visited {
		if hit {
			base := i * 4
			pix[base] = 0
			pix[base+1] = 0
			pix[base+2] = 0
			pix[base+3] = 0
		}
	}
}
