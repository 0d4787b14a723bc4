package services

import (
	"time"

	"joybait/models"
)

// XP granted per completion. A repeat completion on the same UTC
// calendar day grants the reduced amount and leaves the streak alone.
const (
	XPFirstOfDay = 10
	XPRepeat     = 5
)

// AccrualState is a value snapshot of a user's progression. Advance
// never touches storage; the caller persists the returned state.
type AccrualState struct {
	LastCompletedAt *time.Time
	Streak          int
	XP              int
}

// StateFromUser extracts the accrual snapshot from a stored user
func StateFromUser(u models.User) AccrualState {
	return AccrualState{
		LastCompletedAt: u.LastCompletedAt,
		Streak:          u.Streak,
		XP:              u.XP,
	}
}

// Advance computes the next progression state after a completion at
// nowUTC. It is total: any state and any instant produce a result.
//
// Same calendar day as the last completion: +5 XP, streak unchanged,
// last-completed refreshed. Exactly one day later: +10 XP, streak+1.
// Any larger gap, or no prior completion: +10 XP, streak resets to 1.
func Advance(state AccrualState, nowUTC time.Time) (AccrualState, int) {
	nowUTC = nowUTC.UTC()
	today := dayOrdinal(nowUTC)

	xpGained := XPFirstOfDay
	streak := state.Streak

	if state.LastCompletedAt != nil {
		lastDay := dayOrdinal(*state.LastCompletedAt)
		switch {
		case lastDay == today:
			xpGained = XPRepeat
		case today-lastDay == 1:
			streak++
		default:
			streak = 1
		}
	} else {
		streak = 1
	}

	completedAt := nowUTC
	return AccrualState{
		LastCompletedAt: &completedAt,
		Streak:          streak,
		XP:              state.XP + xpGained,
	}, xpGained
}
