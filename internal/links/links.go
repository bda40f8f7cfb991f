package links

import (
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"tienda-arte/internal/models"
)

// Número de WhatsApp de muestra cuando la tienda no configuró el propio
const defaultWhatsAppNumber = "5491112345678"

var pricePrinter = message.NewPrinter(language.English)

// Builder construye los enlaces de traspaso de compra. La tienda no procesa
// pagos: solo arma el link de Mercado Pago del artesano y el de WhatsApp.
type Builder struct {
	whatsAppNumber string
}

func NewBuilder(whatsAppNumber string) Builder {
	if whatsAppNumber == "" {
		whatsAppNumber = defaultWhatsAppNumber
	}
	return Builder{whatsAppNumber: whatsAppNumber}
}

// PaymentLink arma el enlace de pago del artesano con nombre y precio del
// producto como query params. Devuelve "" si el perfil no tiene link de pago.
func (b Builder) PaymentLink(profile *models.Profile, product models.Product) string {
	if profile == nil || profile.MercadoPagoLink == "" {
		return ""
	}
	return fmt.Sprintf("%s?name=%s&price=%s",
		profile.MercadoPagoLink,
		url.QueryEscape(product.Name),
		strconv.FormatFloat(product.Price, 'f', -1, 64),
	)
}

// WhatsAppLink arma el enlace wa.me con el mensaje de consulta prearmado
func (b Builder) WhatsAppLink(product models.Product) string {
	text := fmt.Sprintf("Hola! Me interesa el producto: %s - $%s. ¿Tienen stock disponible?",
		product.Name, DisplayPrice(product.Price))
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.whatsAppNumber, url.QueryEscape(text))
}

// DisplayPrice formatea el precio con separador de miles, como se muestra
// en las tarjetas de producto
func DisplayPrice(price float64) string {
	return pricePrinter.Sprint(number.Decimal(price))
}
