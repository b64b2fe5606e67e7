package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type LegalHandler struct{}

func NewLegalHandler() *LegalHandler {
	return &LegalHandler{}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - MamaCare</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: August 2026</p>
<h2>Information We Collect</h2>
<p>We collect your name, email address, phone number, and the pregnancy details you choose to share in your profile, so we can personalize your timeline and reminders.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate MamaCare, authenticate your account, and show your pregnancy progress. Health information is never shared with third parties.</p>
<h2>Data Storage</h2>
<p>Your data is stored securely on encrypted servers. We do not sell your personal information.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at support@mamacare.app</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - MamaCare</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: August 2026</p>
<h2>Use of Service</h2>
<p>MamaCare provides informational pregnancy tracking and reminders. It is not a medical device and does not replace professional medical advice, diagnosis, or treatment.</p>
<h2>Your Account</h2>
<p>You are responsible for keeping your credentials confidential and for all activity under your account.</p>
<h2>Medical Disclaimer</h2>
<p>Always consult a qualified health provider with questions regarding your pregnancy. Never disregard professional advice because of something shown in this app.</p>
<h2>Contact</h2>
<p>For questions about these terms, contact us at support@mamacare.app</p>
</body></html>`)
}
