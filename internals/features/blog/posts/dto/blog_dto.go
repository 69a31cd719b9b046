package dto

import (
	"strings"
)

type CreateBlogRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

func (r *CreateBlogRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func ValidateCreateBlog(r CreateBlogRequest) map[string][]string {
	errs := map[string][]string{}
	if r.Title == "" {
		errs["title"] = append(errs["title"], "This field is required.")
	} else if len(r.Title) > 191 {
		errs["title"] = append(errs["title"], "Must be at most 191 characters.")
	}
	if r.Description == "" {
		errs["description"] = append(errs["description"], "This field is required.")
	}
	return errs
}

// UpdateBlogRequest uses pointers so an absent field is left untouched.
type UpdateBlogRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
}

func (r *UpdateBlogRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

func ValidateUpdateBlog(r UpdateBlogRequest) map[string][]string {
	errs := map[string][]string{}
	if r.Title != nil {
		if *r.Title == "" {
			errs["title"] = append(errs["title"], "This field is required.")
		} else if len(*r.Title) > 191 {
			errs["title"] = append(errs["title"], "Must be at most 191 characters.")
		}
	}
	if r.Description != nil && *r.Description == "" {
		errs["description"] = append(errs["description"], "This field is required.")
	}
	return errs
}

// ToPatch lists only the supplied columns.
func (r UpdateBlogRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.Title != nil {
		patch["blog_title"] = *r.Title
	}
	if r.Description != nil {
		patch["blog_description"] = *r.Description
	}
	return patch
}
