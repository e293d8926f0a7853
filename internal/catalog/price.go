package catalog

// SelectPrices decides the Price and Compare at Price columns for a
// product. A present special price wins; the regular price is shown as
// the compare-at price only when it is strictly higher, i.e. the
// special price is a genuine markdown. Comparison is exact decimal,
// never float.
func SelectPrices(p Product) (price, compareAt string) {
	if p.SpecialPrice != nil {
		if p.DisplayPrice != nil && p.SpecialPrice.LessThan(*p.DisplayPrice) {
			return p.SpecialPrice.String(), p.DisplayPrice.String()
		}
		return p.SpecialPrice.String(), ""
	}
	if p.DisplayPrice != nil {
		return p.DisplayPrice.String(), ""
	}
	return "", ""
}
