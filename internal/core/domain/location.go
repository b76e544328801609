package domain

// Districts a delivery can be addressed to.
var DeliveryDistricts = []string{
	"Colombo",
	"Gampaha",
	"Kalutara",
	"Kandy",
	"Matale",
	"Nuwara Eliya",
	"Galle",
	"Matara",
	"Hambantota",
	"Jaffna",
	"Kilinochchi",
	"Mullaitivu",
	"Vavuniya",
	"Mannar",
	"Puttalam",
	"Anuradhapura",
	"Polonnaruwa",
	"Badulla",
	"Monaragala",
	"Ratnapura",
	"Kegalle",
	"Trincomalee",
	"Batticaloa",
	"Ampara",
}

var deliveryDistrictSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(DeliveryDistricts))
	for _, d := range DeliveryDistricts {
		s[d] = struct{}{}
	}
	return s
}()

func ValidDeliveryLocation(name string) bool {
	_, ok := deliveryDistrictSet[name]
	return ok
}
