package config

import (
	"os"
	"sync"
)

type EmailJSConfig struct {
	ServiceID        string
	TemplateID       string
	VendorTemplateID string
	PublicKey        string
	PrivateKey       string
}

var (
	emailJSConfig *EmailJSConfig
	emailJSOnce   sync.Once
)

func LoadEmailJSConfig() *EmailJSConfig {
	emailJSOnce.Do(func() {
		emailJSConfig = &EmailJSConfig{
			ServiceID:        os.Getenv("EMAILJS_SERVICE_ID"),
			TemplateID:       os.Getenv("EMAILJS_TEMPLATE_ID"),
			VendorTemplateID: os.Getenv("EMAILJS_VENDOR_TEMPLATE_ID"),
			PublicKey:        os.Getenv("EMAILJS_PUBLIC_KEY"),
			PrivateKey:       os.Getenv("EMAILJS_PRIVATE_KEY"),
		}
	})
	return emailJSConfig
}
