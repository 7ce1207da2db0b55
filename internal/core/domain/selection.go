package domain

// Selection maps each registry domain to whether it is included in the
// next search. Its key set is fixed when it is created.
type Selection map[string]bool

// NewSelection creates a selection with every site deselected.
func NewSelection(sites []Site) Selection {
	sel := make(Selection, len(sites))
	for _, s := range sites {
		sel[s.Domain] = false
	}
	return sel
}

// Toggle flips the flag for domain. Unknown domains are ignored so the
// key set never grows. Returns false if domain was not a known key.
func (s Selection) Toggle(domain string) bool {
	cur, ok := s[domain]
	if !ok {
		return false
	}
	s[domain] = !cur
	return true
}

// Selected returns the selected sites in registry order.
func (s Selection) Selected(sites []Site) []Site {
	out := make([]Site, 0, len(sites))
	for _, site := range sites {
		if s[site.Domain] {
			out = append(out, site)
		}
	}
	return out
}

// Count returns the number of selected domains.
func (s Selection) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
