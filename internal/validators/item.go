package validators

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/google/uuid"
)

const (
	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldContent  = "content"
	FieldTitle    = "title"
	FieldText     = "text"
	FieldColor    = "color"
	FieldDeadline = "deadline"
	FieldUpdate   = "update"
)

const (
	MaxTitleLength = 200
	MaxTextLength  = 10000
)

// ItemValidator validates items, new items and partial updates.
type ItemValidator struct{}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(value, fields...)
	case *models.Item:
		return v.validateItem(*value, fields...)

	case models.NewItem:
		return v.validateNewItem(value, fields...)
	case *models.NewItem:
		return v.validateNewItem(*value, fields...)

	case models.ItemUpdate:
		return v.validateUpdate(value, fields...)
	case *models.ItemUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldTitle, FieldText, FieldColor, FieldDeadline}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = CheckItemID(item.ID)
		case FieldUserID:
			if item.UserID <= 0 {
				err = ErrInvalidUserID
			}
		case FieldContent:
			if item.Title == "" && item.Text == "" {
				err = ErrEmptyItem
			}
		case FieldTitle:
			err = checkTitle(item.Title)
		case FieldText:
			err = checkText(item.Text)
		case FieldColor:
			err = checkColor(item.Color)
		case FieldDeadline:
			err = checkDeadline(item.Deadline)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateNewItem allows an empty color: the server picks one.
func (v *ItemValidator) validateNewItem(item models.NewItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldTitle, FieldText, FieldColor, FieldDeadline}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldContent:
			if item.Title == "" && item.Text == "" {
				err = ErrEmptyItem
			}
		case FieldTitle:
			err = checkTitle(item.Title)
		case FieldText:
			err = checkText(item.Text)
		case FieldColor:
			if item.Color != "" {
				err = checkColor(item.Color)
			}
		case FieldDeadline:
			err = checkDeadline(item.Deadline)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ItemValidator) validateUpdate(update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldUpdate, FieldTitle, FieldText, FieldColor, FieldDeadline}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = CheckItemID(update.ID)
		case FieldUserID:
			if update.UserID <= 0 {
				err = ErrInvalidUserID
			}
		case FieldUpdate:
			if update.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil {
				err = checkTitle(*update.Title)
			}
		case FieldText:
			if update.Text != nil {
				err = checkText(*update.Text)
			}
		case FieldColor:
			if update.Color != nil {
				err = checkColor(*update.Color)
			}
		case FieldDeadline:
			if update.Deadline != nil {
				err = checkDeadline(*update.Deadline)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// CheckItemID accepts only the canonical 36-character UUID form the
// server issues.
func CheckItemID(id string) error {
	if len(id) != 36 {
		return ErrInvalidItemID
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidItemID
	}
	return nil
}

func checkTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func checkText(text string) error {
	if utf8.RuneCountInString(text) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}

func checkColor(color string) error {
	if !view.IsPaletteColor(color) {
		return ErrInvalidColor
	}
	return nil
}

// checkDeadline accepts an empty deadline, meaning "no deadline".
func checkDeadline(deadline string) error {
	if deadline == "" {
		return nil
	}
	if _, err := time.Parse(models.DeadlineLayout, deadline); err != nil {
		return ErrInvalidDeadline
	}
	return nil
}
