package models

// W3CNewSessionRequest body of POST /session
// see details at https://www.w3.org/TR/webdriver2/#new-session
type W3CNewSessionRequest struct {
	Capabilities        *W3CCapabilities       `json:"capabilities,omitempty"`
	DesiredCapabilities map[string]interface{} `json:"desiredCapabilities,omitempty"`
}

// W3CCapabilities WebDriver capabilities model
// see details at https://www.w3.org/TR/webdriver2/#capabilities
type W3CCapabilities struct {
	AlwaysMatch map[string]interface{}   `json:"alwaysMatch,omitempty"`
	FirstMatch  []map[string]interface{} `json:"firstMatch,omitempty"`
}

// Merge flattens the request into a single capability map. Legacy desiredCapabilities win
// over W3C ones since they carry vendor keys (like name) W3C clients filter out.
func (r *W3CNewSessionRequest) Merge() map[string]interface{} {
	merged := make(map[string]interface{})
	if r.DesiredCapabilities != nil {
		merged = deepMergeMaps(merged, r.DesiredCapabilities)
	}
	if r.Capabilities != nil {
		if r.Capabilities.AlwaysMatch != nil {
			merged = deepMergeMaps(merged, r.Capabilities.AlwaysMatch)
		}
		for _, c := range r.Capabilities.FirstMatch {
			merged = deepMergeMaps(merged, c)
		}
	}
	return merged
}

type W3CSession struct {
	SessionID    string                 `json:"sessionId"`
	Capabilities map[string]interface{} `json:"capabilities"`
}

type W3CValue struct {
	Value interface{} `json:"value"`
}

type W3CNavigateRequest struct {
	URL string `json:"url"`
}

type W3CRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func deepMergeMaps(dst, src map[string]interface{}) map[string]interface{} {
	for k, v := range src {
		if vSrc, ok := v.(map[string]interface{}); ok {
			if vDst, ok := dst[k].(map[string]interface{}); ok {
				// Key exists in both and both values are maps, so recurse
				dst[k] = deepMergeMaps(vDst, vSrc)
				continue
			}
		}
		// add the value from src if it doesn't exist in dst
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
	return dst
}
