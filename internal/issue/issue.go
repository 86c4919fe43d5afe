// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidServiceId Id = iota + 1
	TunneldUnreachableId
	UsbmuxUnavailableId
	DeveloperModeDisabledId
	PairingRequiredId
	AccessDeniedId
	UnknownGroupId
	UnknownCommandId
	GroupLoadFailedId
	ConfigLoadFailedId
	UnsupportedHostId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the full Markdown source including the "See also" links.
func (i *Issue) Markdown() string {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range append(i.DocLinks(), i.extLinks...) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return md.String()
}

// Render renders the issue with the named glamour style ("auto", "dark",
// "light", "notty" or a JSON style path).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

const projectIssues = "https://github.com/idevctl/idevctl/issues/new"

var (
	render = glamour.Render

	invalidServiceIssue = &Issue{
		id: InvalidServiceId,
		mdMsg: `
# Failed to start service

## Possible reasons
- You were trying to reach a developer service (the ` + "`developer`" + ` group):
  - Make sure the DeveloperDiskImage / PersonalizedImage is mounted:
~~~
$ idevctl mounter auto-mount
~~~
  - On iOS 17.0 and newer, developer services are only reachable over RSD.
    Pass ` + "`--tunnel <udid>`" + ` or ` + "`--rsd <host> <port>`" + ` to the subcommand.
- Apple removed this service from the installed iOS version.
- A bug in idevctl. Please file a report.`,
		docLinks: []HttpLink{"https://github.com/idevctl/idevctl#working-with-developer-tools-ios-170"},
		extLinks: []HttpLink{projectIssues},
	}

	tunneldUnreachableIssue = &Issue{
		id: TunneldUnreachableId,
		mdMsg: `
# Unable to connect to tunneld

Commands that run over RSD reach the device through the tunneld daemon,
and none is listening.

## Things you can try
- Start one (it needs root to create the tunnel interface):
~~~
$ sudo idevctl remote tunneld
~~~
- Check that nothing else is bound to the tunneld port.`,
	}

	usbmuxUnavailableIssue = &Issue{
		id: UsbmuxUnavailableId,
		mdMsg: `
# Failed to connect to usbmuxd

idevctl talks to USB devices through the usbmuxd socket.

## Things you can try
- macOS: usbmuxd is part of the system; reconnect the device.
- Linux: install and start usbmuxd:
~~~
$ sudo systemctl start usbmuxd
~~~
- Windows: install iTunes or the Apple Devices app, which ship the service.`,
	}

	developerModeDisabledIssue = &Issue{
		id: DeveloperModeDisabledId,
		mdMsg: `
# Developer Mode is disabled

## Things you can try
- Reveal and enable the option on the device:
~~~
$ idevctl amfi enable-developer-mode
~~~
- The device reboots; confirm the prompt after unlocking it.`,
	}

	pairingRequiredIssue = &Issue{
		id: PairingRequiredId,
		mdMsg: `
# The device does not trust this computer

## Things you can try
- Unlock the device and accept the "Trust This Computer?" dialog.
- Start pairing explicitly:
~~~
$ idevctl lockdown pair
~~~`,
	}

	accessDeniedIssue = &Issue{
		id: AccessDeniedId,
		mdMsg: `
# Access denied

The operation needs more privileges than the current process has.

## Things you can try
- Retry with elevated privileges (sudo, or an administrator shell on Windows).
- When running from a Flatpak or Snap package, run the command on the host.`,
	}

	unknownGroupIssue = &Issue{
		id: UnknownGroupId,
		mdMsg: `
# Unknown command group

## Things you can try
- List the available groups:
~~~
$ idevctl
~~~
- Check the spelling of the first argument.`,
	}

	unknownCommandIssue = &Issue{
		id: UnknownCommandId,
		mdMsg: `
# Unknown command

The group exists but has no command with that name.

## Things you can try
- List the group's commands:
~~~
$ idevctl <group> --help
~~~`,
	}

	groupLoadFailedIssue = &Issue{
		id: GroupLoadFailedId,
		mdMsg: `
# Failed to load command group

The group is listed but its implementation could not be loaded. This usually
means the binary was built without that group.

## Things you can try
- Run with ` + "`--verbose`" + ` to see the module and attribute that failed.
- Rebuild idevctl with the group's package linked in.`,
		extLinks: []HttpLink{projectIssues},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

idevctl continued with default settings.

## Things you can try
- Check the file syntax (CUE or TOML).
- Valid keys: ` + "`log.level`, `log.format`, `log.timestamps`, `ui.verbose`, `ui.color_scheme`, `retry.enabled`" + `.
- Point to another file with ` + "`--config <path>`" + `.`,
	}

	unsupportedHostIssue = &Issue{
		id: UnsupportedHostId,
		mdMsg: `
# Host not supported

The device layer has no implementation for this operating system or feature.

## Things you can try
- Run the command on macOS or Linux.
- Contributions adding support are welcome.`,
		extLinks: []HttpLink{projectIssues},
	}

	issues = map[Id]*Issue{
		invalidServiceIssue.Id():        invalidServiceIssue,
		tunneldUnreachableIssue.Id():    tunneldUnreachableIssue,
		usbmuxUnavailableIssue.Id():     usbmuxUnavailableIssue,
		developerModeDisabledIssue.Id(): developerModeDisabledIssue,
		pairingRequiredIssue.Id():       pairingRequiredIssue,
		accessDeniedIssue.Id():          accessDeniedIssue,
		unknownGroupIssue.Id():          unknownGroupIssue,
		unknownCommandIssue.Id():        unknownCommandIssue,
		groupLoadFailedIssue.Id():       groupLoadFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		unsupportedHostIssue.Id():       unsupportedHostIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
