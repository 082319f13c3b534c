package urlcanon

// searchParamTrackers is the global set of query-string tracking
// parameters stripped from every host, sourced from Brave's tracker-param
// filter list.
var searchParamTrackers = map[string]struct{}{
	// https://github.com/brave/brave-browser/issues/9019
	"__hsfp": {}, "__hssc": {}, "__hstc": {},
	// https://github.com/brave/brave-browser/issues/8975
	"__s": {},
	// https://github.com/brave/brave-browser/issues/40716
	"_bhlid": {},
	// https://github.com/brave/brave-browser/issues/39575
	"_branch_match_id": {}, "_branch_referrer": {},
	// https://github.com/brave/brave-browser/issues/33188
	"_gl": {},
	// https://github.com/brave/brave-browser/issues/9019
	"_hsenc": {},
	// https://github.com/brave/brave-browser/issues/34578
	"_kx": {},
	// https://github.com/brave/brave-browser/issues/11579
	"_openstat": {},
	// https://github.com/brave/brave-browser/issues/32488
	"at_recipient_id": {}, "at_recipient_list": {},
	// https://github.com/brave/brave-browser/issues/37971
	"bbeml": {},
	// https://github.com/brave/brave-browser/issues/25238
	"bsft_clkid": {}, "bsft_uid": {},
	// https://github.com/brave/brave-browser/issues/9879
	"dclid": {},
	// https://github.com/brave/brave-browser/issues/37847
	"et_rid": {},
	// https://github.com/brave/brave-browser/issues/33984
	"fb_action_ids": {}, "fb_comment_id": {},
	// https://github.com/brave/brave-browser/issues/4239
	"fbclid": {}, "gclid": {},
	// https://github.com/brave/brave-browser/issues/25691
	"guce_referrer": {}, "guce_referrer_sig": {},
	// https://github.com/brave/brave-browser/issues/9019
	"hsCtaTracking": {},
	// https://github.com/brave/brave-browser/issues/33952
	"irclickid": {},
	// https://github.com/brave/brave-browser/issues/4239
	"mc_eid": {},
	// https://github.com/brave/brave-browser/issues/17507
	"ml_subscriber": {}, "ml_subscriber_hash": {},
	// https://github.com/brave/brave-browser/issues/4239
	"msclkid": {},
	// https://github.com/brave/brave-browser/issues/31084
	"mtm_cid": {},
	// https://github.com/brave/brave-browser/issues/22082
	"oft_c": {}, "oft_ck": {}, "oft_d": {}, "oft_id": {}, "oft_ids": {}, "oft_k": {}, "oft_lk": {}, "oft_sk": {},
	// https://github.com/brave/brave-browser/issues/13644
	"oly_anon_id": {}, "oly_enc_id": {},
	// https://github.com/brave/brave-browser/issues/31084
	"pk_cid": {},
	// https://github.com/brave/brave-browser/issues/17451
	"rb_clickid": {},
	// https://github.com/brave/brave-browser/issues/17452
	"s_cid": {},
	// https://github.com/brave/brave-browser/issues/43077
	"sc_customer": {}, "sc_eh": {}, "sc_uid": {},
	// https://github.com/brave/brave-browser/issues/48228
	"sms_click": {}, "sms_source": {}, "sms_uph": {},
	// https://github.com/brave/brave-browser/issues/40912
	"srsltid": {},
	// https://github.com/brave/brave-browser/issues/24988
	"ss_email_id": {},
	// https://github.com/brave/brave-browser/issues/48226
	"ttclid": {},
	// https://github.com/brave/brave-browser/issues/18020
	"twclid": {},
	// https://github.com/brave/brave-browser/issues/33172
	"unicorn_click_id": {},
	// https://github.com/brave/brave-browser/issues/11817
	"vero_conv": {}, "vero_id": {},
	// https://github.com/brave/brave-browser/issues/26295
	"vgo_ee": {},
	// https://github.com/brave/brave-browser/issues/18758
	"wbraid": {},
	// https://github.com/brave/brave-browser/issues/13647
	"wickedid": {},
	// https://github.com/brave/brave-browser/issues/11578
	"yclid": {},
	// https://github.com/brave/brave-browser/issues/33216
	"ymclid": {}, "ysclid": {},
}

// hostScopedSearchParamTrackers lists tracker params only ever seen on
// specific hosts, so they aren't stripped globally by mistake.
var hostScopedSearchParamTrackers = map[string]map[string]struct{}{
	"instagram.com": {
		// https://github.com/brave/brave-browser/issues/35094
		"igsh": {},
		// https://github.com/brave/brave-browser/issues/11580
		"igshid": {},
	},
	"twitter.com": {
		// https://github.com/brave/brave-browser/issues/26966
		"ref_src": {}, "ref_url": {},
	},
	// https://github.com/brave/brave-browser/issues/34719
	"youtube.com": {"si": {}},
	"youtu.be":    {"si": {}},
}

// normalizedProtocols maps insecure schemes to their secure counterpart,
// used when rendering a fingerprint URL.
var normalizedProtocols = map[string]string{
	"http":  "https",
	"ws":    "wss",
	"ftp":   "ftps",
	"smtp":  "smtps",
	"imap":  "imaps",
	"pop3":  "pop3s",
	"ldap":  "ldaps",
	"irc":   "ircs",
	"nntp":  "nntps",
}

func isTrackerParam(host, name string) bool {
	if _, ok := searchParamTrackers[name]; ok {
		return true
	}
	if trackers, ok := hostScopedSearchParamTrackers[host]; ok {
		if _, ok := trackers[name]; ok {
			return true
		}
	}
	return false
}

func protocolToSecure(protocol string) string {
	if secure, ok := normalizedProtocols[protocol]; ok {
		return secure
	}
	return protocol
}
