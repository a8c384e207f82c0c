package scene

// message is a deferred ReceiveMessage call.
type message struct {
	tag    string
	text   string
	values []any
}

// MessageQueue delivers messages to stage entities on the next Process.
// It is double-buffered: messages sent while Process is delivering are
// held for the following Process.
type MessageQueue struct {
	stage *Stage
	back  []message
	spare []message // drained buffer, reused by the next Process
}

// NewMessageQueue creates a queue delivering to stage's entities.
func NewMessageQueue(stage *Stage) *MessageQueue {
	return &MessageQueue{stage: stage}
}

// Send queues a message. An empty tag addresses every entity; otherwise only
// enabled entities with a matching Tag receive it.
func (q *MessageQueue) Send(tag, text string, values ...any) {
	q.back = append(q.back, message{tag: tag, text: text, values: values})
}

// Pending returns the number of messages waiting for the next Process.
func (q *MessageQueue) Pending() int { return len(q.back) }

// Process delivers every message queued before the call. A receiver may
// call Process itself; the nested call delivers only what was sent since.
func (q *MessageQueue) Process() {
	batch := q.back
	q.back, q.spare = q.spare[:0], nil
	for i := range batch {
		m := &batch[i]
		for _, e := range q.targets(m.tag) {
			// An earlier receiver may have removed this one.
			if e.entity().stage != q.stage {
				continue
			}
			e.ReceiveMessage(m.text, m.values...)
		}
	}
	clear(batch)
	q.spare = batch[:0]
}

// targets resolves a tag against the stage as it is now.
func (q *MessageQueue) targets(tag string) []Entity {
	if q.stage == nil {
		return nil
	}
	if tag == "" {
		return q.stage.Entities()
	}
	var out []Entity
	for _, e := range q.stage.entities {
		if b := e.entity(); b.Enabled && b.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}
