// SPDX-License-Identifier: MPL-2.0

package registry

// Module paths of the shipped command groups. Packages implementing a group
// register themselves with devicegroup.Register under these paths.
const (
	modActivation   = "idevctl/cli/activation"
	modAFC          = "idevctl/cli/afc"
	modAMFI         = "idevctl/cli/amfi"
	modApps         = "idevctl/cli/apps"
	modBackup       = "idevctl/cli/backup"
	modBonjour      = "idevctl/cli/bonjour"
	modCompanion    = "idevctl/cli/companionproxy"
	modCrash        = "idevctl/cli/crash"
	modDeveloper    = "idevctl/cli/developer"
	modDiagnostics  = "idevctl/cli/diagnostics"
	modLockdown     = "idevctl/cli/lockdown"
	modMounter      = "idevctl/cli/mounter"
	modNotification = "idevctl/cli/notification"
	modProcesses    = "idevctl/cli/processes"
	modProfile      = "idevctl/cli/profile"
	modProvision    = "idevctl/cli/provision"
	modRemote       = "idevctl/cli/remote"
	modRestore      = "idevctl/cli/restore"
	modSpringboard  = "idevctl/cli/springboard"
	modSyslog       = "idevctl/cli/syslog"
	modUsbmux       = "idevctl/cli/usbmux"
	modVersion      = "idevctl/cli/version"
	modWebInspector = "idevctl/cli/webinspector"
)

var defaultRegistry = MustNew(
	Descriptor{Name: "activation", Locator: NewLocator(modActivation, "cli"), ShortHelp: "Perform iCloud activation/deactivation or query the current state"},
	Descriptor{Name: "afc", Locator: NewLocator(modAFC, "cli"), ShortHelp: "Manage device multimedia files"},
	Descriptor{Name: "amfi", Locator: NewLocator(modAMFI, "cli"), ShortHelp: "Enable developer-mode or query its state"},
	Descriptor{Name: "apps", Locator: NewLocator(modApps, "cli"), ShortHelp: "Manage installed applications"},
	Descriptor{Name: "backup2", Locator: NewLocator(modBackup, "backup2"), ShortHelp: "Backup and restore options"},
	Descriptor{Name: "bonjour", Locator: NewLocator(modBonjour, "bonjourCLI"), ShortHelp: "Browse devices over bonjour"},
	Descriptor{Name: "companion", Locator: NewLocator(modCompanion, "cli"), ShortHelp: "List paired \"companion\" devices"},
	Descriptor{Name: "crash", Locator: NewLocator(modCrash, "cli"), ShortHelp: "Manage crash reports"},
	Descriptor{Name: "developer", Locator: NewLocator(modDeveloper, "cli"), ShortHelp: "Perform developer operations (requires DeveloperDiskImage to be mounted)"},
	Descriptor{Name: "diagnostics", Locator: NewLocator(modDiagnostics, "cli"), ShortHelp: "Reboot/Shutdown device or access other diagnostics services"},
	Descriptor{Name: "lockdown", Locator: NewLocator(modLockdown, "lockdownGroup"), ShortHelp: "Lockdown options"},
	Descriptor{Name: "mounter", Locator: NewLocator(modMounter, "cli"), ShortHelp: "Mount/Umount DeveloperDiskImage or query related info"},
	Descriptor{Name: "notification", Locator: NewLocator(modNotification, "cli"), ShortHelp: "Post/Observe notifications"},
	Descriptor{Name: "processes", Locator: NewLocator(modProcesses, "cli"), ShortHelp: "View process list using diagnostics relay"},
	Descriptor{Name: "profile", Locator: NewLocator(modProfile, "profileGroup"), ShortHelp: "Managed installed profiles or install SSL certificates"},
	Descriptor{Name: "provision", Locator: NewLocator(modProvision, "cli"), ShortHelp: "Manage installed provision profiles"},
	Descriptor{Name: "remote", Locator: NewLocator(modRemote, "remoteCLI"), ShortHelp: "Create RemoteXPC tunnels"},
	Descriptor{Name: "restore", Locator: NewLocator(modRestore, "cli"), ShortHelp: "Restore an IPSW or access device in recovery mode"},
	Descriptor{Name: "springboard", Locator: NewLocator(modSpringboard, "cli"), ShortHelp: "Access device UI"},
	Descriptor{Name: "syslog", Locator: NewLocator(modSyslog, "cli"), ShortHelp: "Watch syslog messages"},
	Descriptor{Name: "usbmux", Locator: NewLocator(modUsbmux, "usbmuxCLI"), ShortHelp: "List devices or forward a TCP port"},
	Descriptor{Name: "version", Locator: NewLocator(modVersion, "cli"), ShortHelp: "Show the idevctl version and build information"},
	Descriptor{Name: "webinspector", Locator: NewLocator(modWebInspector, "cli"), ShortHelp: "Access webinspector services"},
)

// Default returns the table of groups shipped with idevctl.
func Default() *Registry {
	return defaultRegistry
}

// VersionModulePath is the module path of the in-tree version group.
const VersionModulePath = modVersion
