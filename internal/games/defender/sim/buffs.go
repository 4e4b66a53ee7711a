package sim

// activateBuff starts or refreshes a buff.
func (s *State) activateBuff(b Buff, ticks int) {
	if b < 0 || b >= BuffCount {
		return
	}
	s.Buffs[b] = BuffState{Active: true, Remaining: ticks}
}

// updateBuffs counts down every active buff and reports the ones that run out.
func (s *State) updateBuffs() {
	for b := Buff(0); b < BuffCount; b++ {
		st := &s.Buffs[b]
		if !st.Active {
			continue
		}
		st.Remaining--
		if st.Remaining <= 0 {
			st.Active = false
			st.Remaining = 0
			prof := b.Profile()
			s.notify(EventBuffEnd, prof.Ended, prof.Color, dismissShort)
		}
	}
}
