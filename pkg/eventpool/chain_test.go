package eventpool

import "testing"

func chainHandlers(c *handlerChain) []uintptr {
	var keys []uintptr
	for n := c.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

func TestHandlerChain(t *testing.T) {
	a := Handler(func(sender any, e Event) {})
	b := Handler(func(sender any, e Event) {})
	c := Handler(func(sender any, e Event) {})

	t.Run("append preserves order", func(t *testing.T) {
		chain := &handlerChain{}
		for _, h := range []Handler{a, b, c} {
			chain.append(h)
		}
		got := chainHandlers(chain)
		want := []uintptr{handlerKey(a), handlerKey(b), handlerKey(c)}
		if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
			t.Errorf("chain = %v, want %v", got, want)
		}
		if chain.size != 3 {
			t.Errorf("size = %d, want 3", chain.size)
		}
	})

	t.Run("remove head middle tail", func(t *testing.T) {
		chain := &handlerChain{}
		na := chain.append(a)
		nb := chain.append(b)
		nc := chain.append(c)

		chain.remove(nb)
		if got := chainHandlers(chain); len(got) != 2 || got[0] != handlerKey(a) || got[1] != handlerKey(c) {
			t.Errorf("after middle remove: %v", got)
		}
		chain.remove(na)
		if chain.head != nc || chain.tail != nc {
			t.Error("after head remove: chain should hold only C")
		}
		chain.remove(nc)
		if chain.head != nil || chain.tail != nil || chain.size != 0 {
			t.Error("chain not empty after removing everything")
		}
	})

	t.Run("removed node keeps its successor", func(t *testing.T) {
		chain := &handlerChain{}
		chain.append(a)
		nb := chain.append(b)
		nc := chain.append(c)

		chain.remove(nb)
		if nb.next != nc {
			t.Error("removed node lost its next pointer")
		}
	})

	t.Run("find matches identity", func(t *testing.T) {
		chain := &handlerChain{}
		chain.append(a)
		if chain.find(handlerKey(b)) != nil {
			t.Error("find() returned a node for an absent handler")
		}
		if chain.find(handlerKey(a)) == nil {
			t.Error("find() missed a present handler")
		}
	})

	t.Run("same func value has one identity", func(t *testing.T) {
		if handlerKey(a) != handlerKey(a) {
			t.Error("identical func values compare different")
		}
		if handlerKey(a) == handlerKey(b) {
			t.Error("distinct closures compare equal")
		}
	})
}
