package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

const (
	toastTTL       = 4 * time.Second
	maxToastsShown = 3
)

type toast struct {
	id    int
	kind  toastKind
	title string
	body  string
}

// toasts is the stack of non-blocking notifications. Each toast expires on
// its own timer.
type toasts struct {
	items  []toast
	nextID int
	ttl    time.Duration
}

func newToasts() toasts {
	return toasts{ttl: toastTTL}
}

func (t *toasts) push(msg toastMsg) tea.Cmd {
	t.nextID++
	id := t.nextID
	t.items = append(t.items, toast{id: id, kind: msg.kind, title: msg.title, body: msg.body})
	return tea.Tick(t.ttl, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (t *toasts) expire(id int) {
	for i, item := range t.items {
		if item.id == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

func (t toasts) View() string {
	if len(t.items) == 0 {
		return ""
	}

	shown := t.items
	if len(shown) > maxToastsShown {
		shown = shown[len(shown)-maxToastsShown:]
	}

	boxes := make([]string, 0, len(shown))
	for _, item := range shown {
		content := titleStyle.Render(item.title)
		if item.body != "" {
			content += "\n" + item.body
		}
		switch item.kind {
		case toastSuccess:
			boxes = append(boxes, toastSuccessStyle.Render(content))
		case toastError:
			boxes = append(boxes, toastErrorStyle.Render(content))
		default:
			boxes = append(boxes, toastInfoStyle.Render(content))
		}
	}
	return strings.Join(boxes, "\n")
}

func notify(kind toastKind, title, body string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{kind: kind, title: title, body: body}
	}
}
