package domain

// Brand holds the storefront's fixed contact details, used as fallbacks for
// unset store settings.
var Brand = struct {
	Name          string
	PickupAddress string
	PickupHours   string
	ContactEmail  string
	ContactPhone  string
}{
	Name:          "Khit",
	PickupAddress: "Awbar Street, Kyauk Myoung Gyi Ward, Tamwe Township, Yangon",
	PickupHours:   "Weekdays 10:00 AM - 4:00 PM",
	ContactEmail:  "zweaungnaing.info@gmail.com",
	ContactPhone:  "+95973159230",
}

// DefaultShippingFee is the flat shipping fee in MMK.
const DefaultShippingFee = 2500
