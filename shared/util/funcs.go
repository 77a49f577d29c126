package util

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// Clamp limita um valor ao intervalo [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Between verifica se um valor está entre um limite inferior e superior.
func Between(lower, t, upper float32) bool {
	return t >= lower && t <= upper
}

// Abs retorna o valor absoluto de um float32.
func Abs(n float32) float32 {
	if n < 0 {
		return -n
	}
	return n
}
