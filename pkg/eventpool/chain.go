package eventpool

import "reflect"

// handlerNode is one link of a handler chain. Nodes are unlinked on
// unsubscribe; a removed node keeps its next pointer so a live cursor that
// was redirected through it still lands on a chain member.
type handlerNode struct {
	handler Handler
	key     uintptr
	prev    *handlerNode
	next    *handlerNode
}

// handlerChain is the ordered list of handlers for one event ID.
// Insertion order is dispatch order; new handlers always run last.
type handlerChain struct {
	head *handlerNode
	tail *handlerNode
	size int
}

// handlerKey returns the identity of a handler func. Nil handlers are
// rejected before this is called.
func handlerKey(h Handler) uintptr {
	return reflect.ValueOf(h).Pointer()
}

// append links a new node for h at the tail and returns it.
func (c *handlerChain) append(h Handler) *handlerNode {
	n := &handlerNode{handler: h, key: handlerKey(h)}
	if c.tail == nil {
		c.head = n
		c.tail = n
	} else {
		n.prev = c.tail
		c.tail.next = n
		c.tail = n
	}
	c.size++
	return n
}

// find returns the first node whose handler has the given identity.
func (c *handlerChain) find(key uintptr) *handlerNode {
	for n := c.head; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}
	return nil
}

// remove unlinks n from the chain. The node's own next pointer is left
// intact on purpose (see handlerNode).
func (c *handlerChain) remove(n *handlerNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev = nil
	c.size--
}
