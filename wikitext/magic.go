package wikitext

import (
	"regexp"
	"strings"
)

// magicWords is the set of built-in variable names. A call named exactly like
// one of them is classified as [KindVariable].
var magicWords = map[string]struct{}{
	"CURRENTYEAR": {}, "CURRENTMONTH": {}, "CURRENTMONTH1": {}, "CURRENTMONTH2": {},
	"CURRENTMONTHNAME": {}, "CURRENTMONTHNAMEGEN": {}, "CURRENTMONTHABBREV": {},
	"CURRENTDAY": {}, "CURRENTDAY2": {}, "CURRENTDOW": {}, "CURRENTDAYNAME": {},
	"CURRENTTIME": {}, "CURRENTHOUR": {}, "CURRENTWEEK": {}, "CURRENTTIMESTAMP": {},

	"LOCALYEAR": {}, "LOCALMONTH": {}, "LOCALMONTH1": {}, "LOCALMONTH2": {},
	"LOCALMONTHNAME": {}, "LOCALMONTHNAMEGEN": {}, "LOCALMONTHABBREV": {},
	"LOCALDAY": {}, "LOCALDAY2": {}, "LOCALDOW": {}, "LOCALDAYNAME": {},
	"LOCALTIME": {}, "LOCALHOUR": {}, "LOCALWEEK": {}, "LOCALTIMESTAMP": {},

	"SITENAME": {}, "SERVER": {}, "SERVERNAME": {}, "SCRIPTPATH": {}, "STYLEPATH": {},
	"CURRENTVERSION": {}, "CONTENTLANGUAGE": {}, "CONTENTLANG": {}, "DIRECTIONMARK": {},

	"PAGEID": {}, "PAGELANGUAGE": {}, "PAGESIZE": {}, "PROTECTIONLEVEL": {},
	"PROTECTIONEXPIRY": {}, "CASCADINGSOURCES": {},
	"REVISIONID": {}, "REVISIONDAY": {}, "REVISIONDAY2": {}, "REVISIONMONTH": {},
	"REVISIONMONTH1": {}, "REVISIONYEAR": {}, "REVISIONTIMESTAMP": {},
	"REVISIONUSER": {}, "REVISIONSIZE": {},
	"DISPLAYTITLE": {}, "DEFAULTSORT": {}, "DEFAULTSORTKEY": {}, "DEFAULTCATEGORYSORT": {},

	"NUMBEROFPAGES": {}, "NUMBEROFARTICLES": {}, "NUMBEROFFILES": {}, "NUMBEROFEDITS": {},
	"NUMBEROFUSERS": {}, "NUMBEROFADMINS": {}, "NUMBEROFACTIVEUSERS": {},
	"PAGESINCATEGORY": {}, "PAGESINCAT": {}, "NUMBERINGROUP": {}, "NUMINGROUP": {},

	"FULLPAGENAME": {}, "FULLPAGENAMEE": {}, "PAGENAME": {}, "PAGENAMEE": {},
	"BASEPAGENAME": {}, "BASEPAGENAMEE": {}, "ROOTPAGENAME": {}, "ROOTPAGENAMEE": {},
	"SUBPAGENAME": {}, "SUBPAGENAMEE": {}, "SUBJECTPAGENAME": {}, "SUBJECTPAGENAMEE": {},
	"ARTICLEPAGENAME": {}, "ARTICLEPAGENAMEE": {}, "TALKPAGENAME": {}, "TALKPAGENAMEE": {},
	"NAMESPACE": {}, "NAMESPACEE": {}, "NAMESPACENUMBER": {}, "TALKSPACE": {},
	"TALKSPACEE": {}, "SUBJECTSPACE": {}, "SUBJECTSPACEE": {}, "ARTICLESPACE": {},
	"ARTICLESPACEE": {},
}

// behaviorSwitches lists the known double-underscore switches without the underscores.
// Longer switches go first, so the alternation never stops at a shorter prefix.
var behaviorSwitches = []string{
	"EXPECTUNUSEDCATEGORY",
	"EXPECTUNUSEDTEMPLATE",
	"NONEWSECTIONLINK",
	"NOCONTENTCONVERT",
	"NOTITLECONVERT",
	"NEWSECTIONLINK",
	"STATICREDIRECT",
	"NOEDITSECTION",
	"HIDDENCAT",
	"NOGALLERY",
	"FORCETOC",
	"DISAMBIG",
	"NOGLOBAL",
	"NOINDEX",
	"INDEX",
	"NOTOC",
	"TOC",
	"NOCC",
	"NOTC",
}

// urlSchemes is the ordered list of the schemes an external link may start with.
var urlSchemes = []string{
	"bitcoin:",
	"ftp://",
	"ftps://",
	"geo:",
	"git://",
	"gopher://",
	"http://",
	"https://",
	"irc://",
	"ircs://",
	"magnet:",
	"mailto:",
	"matrix:",
	"mms://",
	"news:",
	"nntp://",
	"redis://",
	"sftp://",
	"sip:",
	"sips:",
	"sms:",
	"ssh://",
	"svn://",
	"tel:",
	"telnet://",
	"urn:",
	"worldwind://",
	"xmpp:",
	"//",
}

// IsMagicWord reports if the name is a built-in variable.
func IsMagicWord(name string) bool {
	_, ok := magicWords[name]
	return ok
}

func schemeAlternation() string {
	quoted := make([]string, len(urlSchemes))
	for i, scheme := range urlSchemes {
		quoted[i] = regexp.QuoteMeta(scheme)
	}
	return strings.Join(quoted, "|")
}
