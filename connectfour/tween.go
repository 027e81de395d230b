package connectfour

import "github.com/tanema/gween"

// action is what happens while a tween runs and once it is done.
type action struct {
	nexts    []func(g *ConnectFour)
	onChange func(float32)
	onFinish []func()
}

func (a *action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// next starts t with then once a's tween has finished.
func (a *action) next(t *gween.Tween, then *action) {
	a.nexts = append(a.nexts, func(g *ConnectFour) {
		g.tweens[t] = then
	})
}

type tweens map[*gween.Tween]*action

// update advances every running tween. Tweens started by finished ones
// begin on the next call.
func (ts tweens) update(g *ConnectFour, dt float32) {
	var nexts []func(*ConnectFour)
	for t, a := range ts {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, f := range a.onFinish {
				f()
			}
			nexts = append(nexts, a.nexts...)
			delete(ts, t)
		}
	}
	for _, next := range nexts {
		next(g)
	}
}
