package services

import "html/template"

var (
	adminContactTemplate   = template.Must(template.New("admin_contact").Parse(adminContactHTML))
	adminPartnerTemplate   = template.Must(template.New("admin_partner").Parse(adminPartnerHTML))
	confirmContactTemplate = template.Must(template.New("confirm_contact").Parse(confirmContactHTML))
	confirmPartnerTemplate = template.Must(template.New("confirm_partner").Parse(confirmPartnerHTML))
)

const emailStyle = `
        body { font-family: Arial, sans-serif; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #8B4513; color: white; padding: 20px; border-radius: 5px; margin-bottom: 20px; }
        .content { padding: 20px; border: 1px solid #ddd; margin-bottom: 20px; line-height: 1.6; }
        .field { margin-bottom: 15px; padding-bottom: 10px; border-bottom: 1px solid #eee; }
        .label { font-weight: bold; color: #8B4513; }
        .value { color: #555; }
        .footer { text-align: center; color: #999; font-size: 12px; }
`

const adminContactHTML = `<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
    <div class="container">
        <div class="header">
            <h2>New Contact Message - ID: #{{.Reference}}</h2>
        </div>
        <div class="content">
            <div class="field"><div class="label">Name:</div><div class="value">{{.Inquiry.Name}}</div></div>
            <div class="field"><div class="label">Email:</div><div class="value"><a href="mailto:{{.Inquiry.Email}}">{{.Inquiry.Email}}</a></div></div>
            <div class="field"><div class="label">Phone:</div><div class="value">{{.Inquiry.Phone}}</div></div>
            <div class="field"><div class="label">Message:</div><div class="value">{{.Inquiry.Message}}</div></div>
            <div class="field"><div class="label">IP Address:</div><div class="value">{{.Inquiry.IPAddress}}</div></div>
        </div>
        <div class="footer"><p>This is an automated notification. Please do not reply to this email.</p></div>
    </div>
</body>
</html>`

const adminPartnerHTML = `<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
    <div class="container">
        <div class="header">
            <h2>New {{.TypeLabel}} Inquiry - ID: #{{.Reference}}</h2>
        </div>
        <div class="content">
            <h3>Inquiry Details:</h3>
            <div class="field"><div class="label">Inquiry Type:</div><div class="value">{{.TypeLabel}}</div></div>
            <div class="field"><div class="label">Full Name:</div><div class="value">{{.Inquiry.Name}}</div></div>
            <div class="field"><div class="label">Company Name:</div><div class="value">{{.Inquiry.CompanyName}}</div></div>
            <div class="field"><div class="label">Email:</div><div class="value"><a href="mailto:{{.Inquiry.Email}}">{{.Inquiry.Email}}</a></div></div>
            <div class="field"><div class="label">Phone:</div><div class="value">{{.Inquiry.Phone}}</div></div>
            <div class="field"><div class="label">City:</div><div class="value">{{.Inquiry.City}}</div></div>
            <div class="field"><div class="label">State:</div><div class="value">{{.Inquiry.State}}</div></div>
            <div class="field"><div class="label">Business Experience:</div><div class="value">{{.Inquiry.BusinessExperience}}</div></div>
            <div class="field"><div class="label">Message:</div><div class="value">{{.Inquiry.Message}}</div></div>
            <div class="field"><div class="label">IP Address:</div><div class="value">{{.Inquiry.IPAddress}}</div></div>
        </div>
        <div class="footer"><p>This is an automated notification. Please do not reply to this email.</p></div>
    </div>
</body>
</html>`

const confirmContactHTML = `<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
    <div class="container">
        <div class="header">
            <h2>Thank You for Contacting Us</h2>
        </div>
        <div class="content">
            <p>Dear {{.Inquiry.Name}},</p>
            <p>Thank you for reaching out to {{.SiteName}}. We have received your message and will get back to you as soon as possible.</p>
            <p><strong>Your Message Reference:</strong> #{{.Reference}}</p>
            <p>Best regards,<br>{{.SiteName}} Team</p>
        </div>
    </div>
</body>
</html>`

const confirmPartnerHTML = `<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
    <div class="container">
        <div class="header">
            <h2>Thank You for Your Partnership Inquiry</h2>
        </div>
        <div class="content">
            <p>Dear {{.Inquiry.Name}},</p>
            <p>Thank you for your interest in becoming a {{.TypeLabel}} partner with {{.SiteName}}. We are excited to explore this partnership opportunity with you.</p>
            <h3>Next Steps:</h3>
            <ul style="line-height: 2;">
                <li>Our team will review your inquiry within 24-48 business hours.</li>
                <li>We will contact you via email or phone with further details.</li>
                <li>We will discuss partnership terms, benefits, and requirements.</li>
                <li>If mutually interested, we will proceed with formal documentation.</li>
            </ul>
            <p><strong>Your Inquiry Reference:</strong> #{{.Reference}}</p>
            <p style="margin-top: 30px;">If you have any immediate questions, please feel free to contact us at:</p>
            <p><strong>{{.SitePhone}}</strong><br><strong>{{.AdminEmail}}</strong></p>
            <p style="margin-top: 30px;">Best regards,<br><strong>{{.SiteName}} Partnership Team</strong></p>
        </div>
        <div class="footer"><p>This is an automated confirmation email. Please save this email for your records.</p></div>
    </div>
</body>
</html>`
