package lock

const ReleaseScript = releaseScript
