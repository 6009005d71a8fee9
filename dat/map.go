package dat

// PageMap maps runes of the Basic Multilingual Plane to dense alphabet IDs.
// It's a two-level page table keyed by the high and low byte of the rune:
//   - Top[hi] = page number (1-based), or 0 meaning "page absent".
//   - Pages holds 256 entries per allocated page.
//
// Roman input touches one or two pages, so the table stays around 1 KB.
// Runes outside the BMP are never part of the alphabet.
type PageMap struct {
	Top   [256]uint16
	Pages []uint16
}

// Lookup returns the dense ID for r, or 0 if r is not mapped.
func (m *PageMap) Lookup(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	page := m.Top[r>>8]
	if page == 0 {
		return 0
	}
	return m.Pages[int(page-1)<<8+int(r&0xFF)]
}

// Assign maps r to dense. It returns false for runes outside the BMP.
// Assigning 0 clears a mapping.
func (m *PageMap) Assign(r rune, dense uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	hi := r >> 8
	page := m.Top[hi]
	if page == 0 {
		if dense == 0 {
			return true
		}
		m.Pages = append(m.Pages, make([]uint16, 256)...)
		page = uint16(len(m.Pages) >> 8)
		m.Top[hi] = page
	}
	m.Pages[int(page-1)<<8+int(r&0xFF)] = dense
	return true
}

// NumPages returns the number of allocated pages.
func (m *PageMap) NumPages() int { return len(m.Pages) >> 8 }
