package gomamayo

// Overlap は left の末尾と right の先頭で一致するモーラ列の最大長を返す
// 長い方から探索し、最初に一致した長さを返す。一致しなければ0
func Overlap(left, right Morae) int {
	m := left.Size()
	if right.Size() < m {
		m = right.Size()
	}
	for d := m; d > 0; d-- {
		if equalMorae(left[left.Size()-d:], right[:d]) {
			return d
		}
	}
	return 0
}

func equalMorae(a, b Morae) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
