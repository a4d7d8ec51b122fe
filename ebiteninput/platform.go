package ebiteninput

import (
	"runtime"

	"github.com/phanxgames/quill"
)

// DetectPlatform describes the host for quill.WithPlatform. Ebitengine
// delivers touches with ids on mobile builds only, so the decision follows
// the target OS.
func DetectPlatform() quill.Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) quill.Platform {
	switch goos {
	case "android", "ios":
		return quill.Platform{
			PointerEvents:  true,
			MaxTouchPoints: 10,
			Mobile:         true,
			CoarsePointer:  true,
			PrimaryPointer: quill.PointerTouch,
		}
	default:
		return quill.Platform{
			PointerEvents:  true,
			PrimaryPointer: quill.PointerMouse,
		}
	}
}
