//go:build windows

package winapi

const (
	WsExLayered     = 0x00080000
	WsExTopmost     = 0x00000008
	WsExToolWindow  = 0x00000080
	WsExTransparent = 0x00000020
	WsExNoActivate  = 0x08000000
	WsPopup         = 0x80000000

	CsHRedraw = 0x0002
	CsVRedraw = 0x0001

	SwHide = 0
	SwShow = 5

	SwpNoMove     = 0x0002
	SwpNoSize     = 0x0001
	SwpNoZOrder   = 0x0004
	SwpNoActivate = 0x0010
	SwpShowWindow = 0x0040
	SwpHideWindow = 0x0080
	SwpNoRedraw   = 0x0008

	LwaAlpha = 0x00000002

	// WdaExcludeFromCapture is WDA_EXCLUDEFROMCAPTURE, supported from
	// Windows 10 version 2004; older systems return 0 from
	// SetWindowDisplayAffinity and the operation degrades to a no-op.
	WdaExcludeFromCapture = 0x00000011
	WdaNone               = 0x00000000

	WmPaint         = 0x000F
	WmDestroy       = 0x0002
	WmTimer         = 0x0113
	WmClose         = 0x0010
	WmQuit          = 0x0012
	WmDisplayChange = 0x007E
	WmApp           = 0x8000

	EventSystemForeground    = 0x0003
	EventObjectLocationChange = 0x800B
	ObjIDWindow              = 0x00000000
	WinEventOutOfContext     = 0x0000
	WinEventSkipOwnProcess   = 0x0002

	DwmwaExtendedFrameBounds = 9

	// ProcessQueryLimitedInformation is the minimal access right needed
	// by QueryFullProcessImageName (§4.2 UWP host process resolution).
	ProcessQueryLimitedInformation = 0x1000

	// HwndTopmost, passed as the insertAfter handle, keeps a window above
	// all non-topmost windows in Z-order.
	HwndTopmost = ^uintptr(0)
)
