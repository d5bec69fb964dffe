package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "fluent-ribbon.svg"
)

// LogoResource is the application icon: a tab strip above a group box
var LogoResource = fyne.NewStaticResource(AppIcon, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
<rect x="4" y="8" width="16" height="10" rx="2" fill="#2b579a"/>
<rect x="22" y="8" width="14" height="10" rx="2" fill="#7a9cc6"/>
<rect x="38" y="8" width="12" height="10" rx="2" fill="#d35400"/>
<rect x="4" y="20" width="56" height="36" rx="3" fill="#f3f3f3" stroke="#2b579a" stroke-width="2"/>
<rect x="10" y="26" width="12" height="16" rx="1" fill="#2b579a"/>
<rect x="26" y="26" width="10" height="6" rx="1" fill="#7a9cc6"/>
<rect x="26" y="35" width="10" height="6" rx="1" fill="#7a9cc6"/>
<rect x="40" y="26" width="14" height="16" rx="1" fill="#27ae60"/>
</svg>`))
