package dashboard

import (
	"errors"
	"fmt"
	"log"
)

// Handles are the opaque values registered with layout callbacks. The
// high 32 bits carry a tag and the low 32 bits a stable arena index:
//
//	63            40 39   32 31                    0
//	[ must be zero ][ tag  ][        index         ]
//
// encodeHandle and decodeHandle are the only places that build or read
// them.

// Tag names the kind of state a handle points at.
type Tag uint8

const (
	TagInvalid Tag = iota
	TagApp
	TagMenu
	TagDropdown
	TagChart
	tagCount
)

func (t Tag) String() string {
	switch t {
	case TagApp:
		return "app"
	case TagMenu:
		return "menu"
	case TagDropdown:
		return "dropdown"
	case TagChart:
		return "chart"
	default:
		return "invalid"
	}
}

// ErrInvalidHandle is wrapped by every handle decoding failure.
var ErrInvalidHandle = errors.New("invalid handle")

func encodeHandle(tag Tag, index int) uint64 {
	return uint64(tag)<<32 | uint64(uint32(index))
}

func decodeHandle(h uint64) (Tag, int, error) {
	if h == 0 {
		return TagInvalid, 0, fmt.Errorf("zero handle: %w", ErrInvalidHandle)
	}
	if h>>40 != 0 {
		return TagInvalid, 0, fmt.Errorf("handle %#x has reserved bits set: %w", h, ErrInvalidHandle)
	}
	tag := Tag(h >> 32 & 0xff)
	if tag == TagInvalid || tag >= tagCount {
		return TagInvalid, 0, fmt.Errorf("handle %#x has unknown tag %d: %w", h, tag, ErrInvalidHandle)
	}
	return tag, int(uint32(h)), nil
}

// resolveApp accepts app and chart handles; both point at the App itself.
func (a *App) resolveApp(h uint64) (*App, bool) {
	tag, idx, err := decodeHandle(h)
	if err == nil && tag != TagApp && tag != TagChart {
		err = fmt.Errorf("expected app handle, got %s: %w", tag, ErrInvalidHandle)
	}
	if err == nil && idx != 0 {
		err = fmt.Errorf("app index %d out of range: %w", idx, ErrInvalidHandle)
	}
	if err != nil {
		log.Printf("[ERROR] Rejected callback handle: %v", err)
		return nil, false
	}
	return a, true
}

func (a *App) resolveMenu(h uint64) (*MenuState, bool) {
	tag, idx, err := decodeHandle(h)
	if err == nil && tag != TagMenu {
		err = fmt.Errorf("expected menu handle, got %s: %w", tag, ErrInvalidHandle)
	}
	if err == nil && idx >= len(a.menus) {
		err = fmt.Errorf("menu index %d out of range: %w", idx, ErrInvalidHandle)
	}
	if err != nil {
		log.Printf("[ERROR] Rejected callback handle: %v", err)
		return nil, false
	}
	return &a.menus[idx], true
}

func (a *App) resolveDropdown(h uint64) (*DropdownState, bool) {
	tag, idx, err := decodeHandle(h)
	if err == nil && tag != TagDropdown {
		err = fmt.Errorf("expected dropdown handle, got %s: %w", tag, ErrInvalidHandle)
	}
	if err == nil && idx >= len(a.dropdowns) {
		err = fmt.Errorf("dropdown index %d out of range: %w", idx, ErrInvalidHandle)
	}
	if err != nil {
		log.Printf("[ERROR] Rejected callback handle: %v", err)
		return nil, false
	}
	return &a.dropdowns[idx], true
}
