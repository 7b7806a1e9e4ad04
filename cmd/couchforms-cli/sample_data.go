package main

import (
	"github.com/goliatone/go-couchforms/pkg/forms"
	"github.com/goliatone/go-couchforms/pkg/model"
	"github.com/goliatone/go-couchforms/pkg/widgets"
)

// sampleForm builds a bound blog-post form exercising every visit kind:
// plain fields, a hidden field, nested groups, an embed, and an embed list.
func sampleForm() forms.Form {
	commentType := &model.DocumentType{
		Name:  "comment",
		Label: "Comment",
	}

	return forms.Form{
		Items: []forms.Item{
			forms.Binding{
				Name:  "_id",
				Field: model.Field{Widget: widgets.Hidden()},
				Value: "post-1",
			},
			forms.Binding{
				Name: "title",
				Field: model.Field{
					Required: true,
					Hint:     "Shown in the index page",
					Widget:   widgets.Text(),
				},
				Value: "Hello world",
			},
			forms.Group{
				Name: "author",
				Items: []forms.Item{
					forms.Binding{
						Name: "display_name",
						Field: model.Field{
							Description: "How your name appears under the post",
							Widget:      widgets.Text(),
						},
						Value: "Alex",
					},
					forms.Binding{
						Name:  "email",
						Field: model.Field{Required: true, Widget: widgets.Text()},
						Value: "alex@example.com",
					},
				},
			},
			forms.Binding{
				Name: "featured_comment",
				Field: model.Field{
					Type:   commentType,
					Widget: widgets.Embed(),
				},
				Value: map[string]any{"_id": "comment-9", "text": "First!"},
			},
			forms.Binding{
				Name: "comments",
				Field: model.Field{
					Type:   commentType,
					Widget: widgets.EmbedList(),
				},
				Value: []any{
					map[string]any{"_id": "comment-1", "text": "Nice post"},
					map[string]any{"_id": "comment-2", "text": "Agreed"},
				},
			},
		},
	}
}
