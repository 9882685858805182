// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package wslutil opens URLs with Windows browsers from inside WSL.
//
// http(s) URLs can simply be handed to cmd.exe or powershell.exe, but
// file:// targets need real work: the Windows side must be located (root
// mount, cmd.exe, powershell.exe), the user's default browser command must
// be read from the Windows registry, and paths must be translated between
// the Linux and Windows views of the filesystem, including the
// \\wsl$\<distro> network form for files living inside the distro.
package wslutil
