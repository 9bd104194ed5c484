package mgmt

import "context"

// EmailTemplate is a project-level email template. TemplateID is chosen at
// creation and never changes.
type EmailTemplate struct {
	TemplateID string `json:"template_id"    yaml:"template_id"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`

	// SenderInformation is optional for prebuilt templates and required for custom HTML ones.
	SenderInformation       *SenderInformation       `json:"sender_information,omitempty"        yaml:"sender_information,omitempty"`
	PrebuiltCustomization   *PrebuiltCustomization   `json:"prebuilt_customization,omitempty"    yaml:"prebuilt_customization,omitempty"`
	CustomHTMLCustomization *CustomHTMLCustomization `json:"custom_html_customization,omitempty" yaml:"custom_html_customization,omitempty"`
}

// SenderInformation describes the sender and reply-to addresses. Local parts
// are everything before the @ symbol.
type SenderInformation struct {
	FromLocalPart    string `json:"from_local_part,omitempty"     yaml:"from_local_part,omitempty"`
	FromDomain       string `json:"from_domain,omitempty"         yaml:"from_domain,omitempty"`
	FromName         string `json:"from_name,omitempty"           yaml:"from_name,omitempty"`
	ReplyToLocalPart string `json:"reply_to_local_part,omitempty" yaml:"reply_to_local_part,omitempty"`
	ReplyToName      string `json:"reply_to_name,omitempty"       yaml:"reply_to_name,omitempty"`
}

// PrebuiltCustomization styles a prebuilt email template.
type PrebuiltCustomization struct {
	ButtonBorderRadius *float64      `json:"button_border_radius,omitempty" yaml:"button_border_radius,omitempty"`
	ButtonColor        string        `json:"button_color,omitempty"         yaml:"button_color,omitempty"`
	ButtonTextColor    string        `json:"button_text_color,omitempty"    yaml:"button_text_color,omitempty"`
	FontFamily         FontFamily    `json:"font_family,omitempty"          yaml:"font_family,omitempty"`
	TextAlignment      TextAlignment `json:"text_alignment,omitempty"       yaml:"text_alignment,omitempty"`
}

// CustomHTMLCustomization is a fully custom HTML email template.
type CustomHTMLCustomization struct {
	TemplateType     EmailTemplateType `json:"template_type,omitempty"     yaml:"template_type,omitempty"`
	HTMLContent      string            `json:"html_content,omitempty"      yaml:"html_content,omitempty"`
	PlaintextContent string            `json:"plaintext_content,omitempty" yaml:"plaintext_content,omitempty"`
	Subject          string            `json:"subject,omitempty"           yaml:"subject,omitempty"`
}

// CreateEmailTemplateRequest creates an email template in a project.
type CreateEmailTemplateRequest struct {
	ProjectSlug string `json:"-" yaml:"-"`

	EmailTemplate `yaml:",inline"`
}

// EmailTemplateRequest identifies an email template within a project.
type EmailTemplateRequest struct {
	ProjectSlug string `json:"-" yaml:"-"`
	TemplateID  string `json:"-" yaml:"-"`
}

// UpdateEmailTemplateRequest represents a partial email template update.
type UpdateEmailTemplateRequest struct {
	ProjectSlug string `json:"-" yaml:"-"`
	TemplateID  string `json:"-" yaml:"-"`

	Name                    *string                  `json:"name,omitempty"                      yaml:"name,omitempty"`
	SenderInformation       *SenderInformation       `json:"sender_information,omitempty"        yaml:"sender_information,omitempty"`
	PrebuiltCustomization   *PrebuiltCustomization   `json:"prebuilt_customization,omitempty"    yaml:"prebuilt_customization,omitempty"`
	CustomHTMLCustomization *CustomHTMLCustomization `json:"custom_html_customization,omitempty" yaml:"custom_html_customization,omitempty"`
}

// EmailTemplateResponse is returned by create, get and update.
type EmailTemplateResponse struct {
	ResponseMeta `yaml:",inline"`

	EmailTemplate EmailTemplate `json:"email_template" yaml:"email_template"`
}

// GetAllEmailTemplatesRequest identifies the project whose templates are listed.
type GetAllEmailTemplatesRequest struct {
	ProjectSlug string `json:"-" yaml:"-"`
}

// GetAllEmailTemplatesResponse lists the email templates of a project.
type GetAllEmailTemplatesResponse struct {
	ResponseMeta `yaml:",inline"`

	EmailTemplates []EmailTemplate `json:"email_templates" yaml:"email_templates"`
}

// DeleteEmailTemplateResponse is returned by EmailTemplatesClient.Delete.
type DeleteEmailTemplateResponse struct {
	ResponseMeta `yaml:",inline"`
}

// SetDefaultEmailTemplateRequest makes TemplateID the default for a template type.
type SetDefaultEmailTemplateRequest struct {
	ProjectSlug       string            `json:"-" yaml:"-"`
	EmailTemplateType EmailTemplateType `json:"-" yaml:"-"`

	TemplateID string `json:"template_id" yaml:"template_id"`
}

// SetDefaultEmailTemplateResponse is returned by EmailTemplatesClient.SetDefault.
type SetDefaultEmailTemplateResponse struct {
	ResponseMeta `yaml:",inline"`
}

// DefaultEmailTemplateRequest identifies a template type within a project.
type DefaultEmailTemplateRequest struct {
	ProjectSlug       string            `json:"-" yaml:"-"`
	EmailTemplateType EmailTemplateType `json:"-" yaml:"-"`
}

// GetDefaultEmailTemplateResponse carries the default template for a type.
type GetDefaultEmailTemplateResponse struct {
	ResponseMeta `yaml:",inline"`

	TemplateID string `json:"template_id" yaml:"template_id"`
}

// UnsetDefaultEmailTemplateResponse is returned by EmailTemplatesClient.UnsetDefault.
type UnsetDefaultEmailTemplateResponse struct {
	ResponseMeta `yaml:",inline"`
}

// EmailTemplatesClient manages project email templates and the default
// template for each template type.
type EmailTemplatesClient interface {
	Create(ctx context.Context, request *CreateEmailTemplateRequest) (*EmailTemplateResponse, error)
	Get(ctx context.Context, request *EmailTemplateRequest) (*EmailTemplateResponse, error)
	GetAll(ctx context.Context, request *GetAllEmailTemplatesRequest) (*GetAllEmailTemplatesResponse, error)
	Update(ctx context.Context, request *UpdateEmailTemplateRequest) (*EmailTemplateResponse, error)
	Delete(ctx context.Context, request *EmailTemplateRequest) (*DeleteEmailTemplateResponse, error)
	SetDefault(ctx context.Context, request *SetDefaultEmailTemplateRequest) (*SetDefaultEmailTemplateResponse, error)
	GetDefault(ctx context.Context, request *DefaultEmailTemplateRequest) (*GetDefaultEmailTemplateResponse, error)
	// UnsetDefault succeeds when no default is set. The PREBUILT type cannot be unset.
	UnsetDefault(ctx context.Context, request *DefaultEmailTemplateRequest) (*UnsetDefaultEmailTemplateResponse, error)
}
