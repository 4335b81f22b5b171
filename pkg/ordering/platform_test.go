package ordering

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var errPlatform = errors.New("platform unavailable")

// fakePlatform records calls and keeps a small in-memory picture of channels and messages.
type fakePlatform struct {
	mu sync.Mutex

	nextID     int
	channels   map[string]bool
	categories map[string]bool
	messages   map[string]PanelView

	welcomed []string
	notified []string
	deleted  []string

	failCreateChannel bool
	failDelete        bool
	failPostPanel     bool
	failNotify        map[string]bool

	// editHook runs before every panel edit, outside the lock.
	editHook func()
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		channels:   make(map[string]bool),
		categories: make(map[string]bool),
		messages:   make(map[string]PanelView),
		failNotify: make(map[string]bool),
	}
}

func (p *fakePlatform) id(prefix string) string {
	p.nextID++
	return fmt.Sprintf("%s%d", prefix, p.nextID)
}

func (p *fakePlatform) ProvisionOrderChannel(_ context.Context, _ string) (string, string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	channelID, categoryID := p.id("order"), p.id("cat")
	p.channels[channelID] = true
	p.categories[categoryID] = true
	return channelID, categoryID, nil
}

func (p *fakePlatform) CategoryExists(_ context.Context, _, categoryID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.categories[categoryID], nil
}

func (p *fakePlatform) ChannelExists(_ context.Context, channelID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channels[channelID], nil
}

func (p *fakePlatform) CreateTicketChannel(_ context.Context, _ TicketChannelRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failCreateChannel {
		return "", errPlatform
	}
	id := p.id("ticket")
	p.channels[id] = true
	return id, nil
}

func (p *fakePlatform) DeleteChannel(_ context.Context, channelID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failDelete {
		return errPlatform
	}
	switch {
	case p.channels[channelID]:
		delete(p.channels, channelID)
	case p.categories[channelID]:
		delete(p.categories, channelID)
	default:
		return ErrPlatformNotFound
	}
	p.deleted = append(p.deleted, channelID)
	return nil
}

func (p *fakePlatform) SendTicketWelcome(_ context.Context, channelID, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.welcomed = append(p.welcomed, channelID)
	return nil
}

func (p *fakePlatform) PostPanel(_ context.Context, channelID string, view PanelView) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failPostPanel {
		return "", errPlatform
	}

	if !p.channels[channelID] {
		return "", ErrPlatformNotFound
	}
	id := p.id("msg")
	p.messages[id] = view
	return id, nil
}

func (p *fakePlatform) EditPanel(_ context.Context, _, messageID string, view PanelView) error {
	p.mu.Lock()
	hook := p.editHook
	p.mu.Unlock()
	if hook != nil {
		hook()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.messages[messageID]; !ok {
		return ErrPlatformNotFound
	}
	p.messages[messageID] = view
	return nil
}

func (p *fakePlatform) NotifyReopened(_ context.Context, _, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notified = append(p.notified, userID)
	if p.failNotify[userID] {
		return errPlatform
	}
	return nil
}

func (p *fakePlatform) setEditHook(hook func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.editHook = hook
}

func (p *fakePlatform) panel(messageID string) PanelView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.messages[messageID]
}
