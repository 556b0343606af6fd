/*
Package wf defines the well-formedness oracle a driver consults
between passes: a fixed, narrow interface over an otherwise opaque
collaborator. This package holds no schema language of its own — that
is left to whatever frontend builds one — only the contract a
driver.Stage attaches to.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package wf
